package domain

import "encoding/json"

// ShippingAddress is the carrier's address block, used both outbound
// (ship_from / ship_to) and in the carrier's normalized response.
type ShippingAddress struct {
	Name                 string `json:"name"`
	AddressLine1         string `json:"address_line1"`
	CityLocality         string `json:"city_locality"`
	StateProvince        string `json:"state_province"`
	PostalCode           string `json:"postal_code"`
	CountryCode          string `json:"country_code"`
	Phone                string `json:"phone,omitempty"`
	Email                string `json:"email,omitempty"`
	ResidentialIndicator string `json:"address_residential_indicator,omitempty"`
}

// Weight and Dimensions describe a parcel in the carrier's units.
type Weight struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// Parcel is a single package on a shipment.
type Parcel struct {
	Weight     Weight     `json:"weight"`
	Dimensions Dimensions `json:"dimensions"`
}

// ShipmentRequest is the outbound payload to the carrier's shipment
// endpoint. Built fresh per submission; never persisted.
type ShipmentRequest struct {
	ShipFrom    *ShippingAddress `json:"ship_from"`
	ShipTo      *ShippingAddress `json:"ship_to"`
	Packages    []Parcel         `json:"packages"`
	CarrierID   string           `json:"carrier_id"`
	ServiceCode string           `json:"service_code"`
}

// HasRequiredFields reports whether the payload carries the three fields
// the carrier boundary insists on before any outbound call is made.
func (r ShipmentRequest) HasRequiredFields() bool {
	return r.ShipFrom != nil && r.ShipTo != nil && len(r.Packages) > 0
}

// Money is the carrier's amount/currency pair.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// LabelDownload holds the label document references returned by the carrier.
type LabelDownload struct {
	PDF string `json:"pdf"`
	PNG string `json:"png,omitempty"`
	ZPL string `json:"zpl,omitempty"`
}

// ShipmentResult is the carrier's parsed response. ShipmentCost and
// LabelDownload are optional in the carrier contract; default substitution
// happens here, once, instead of optional-field checks spreading through
// the orchestration.
type ShipmentResult struct {
	// Raw preserves the carrier's response body verbatim for the
	// passthrough shipping endpoint.
	Raw json.RawMessage `json:"-"`

	ShipmentID     string           `json:"shipment_id,omitempty"`
	TrackingNumber string           `json:"tracking_number"`
	ShipTo         *ShippingAddress `json:"ship_to"`
	ShipmentCost   *Money           `json:"shipment_cost,omitempty"`
	TrackingURL    string           `json:"tracking_url,omitempty"`
	CreatedAt      string           `json:"created_at,omitempty"`
	LabelDownload  *LabelDownload   `json:"label_download,omitempty"`
	CarrierCode    string           `json:"carrier_code,omitempty"`
}

// CostAmount returns the shipment cost, defaulting to 0 when the carrier
// omitted it.
func (r ShipmentResult) CostAmount() float64 {
	if r.ShipmentCost == nil {
		return 0
	}
	return r.ShipmentCost.Amount
}

// LabelPDF returns the label reference, or empty when none was issued.
func (r ShipmentResult) LabelPDF() string {
	if r.LabelDownload == nil {
		return ""
	}
	return r.LabelDownload.PDF
}

// DestinationOrZero never returns nil so downstream mapping can read the
// normalized ship-to block without guarding.
func (r ShipmentResult) DestinationOrZero() ShippingAddress {
	if r.ShipTo == nil {
		return ShippingAddress{}
	}
	return *r.ShipTo
}
