package service

import (
	"strings"
	"testing"

	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
)

func validInput() domain.CustomerInput {
	return domain.CustomerInput{
		FirstName:     "Ali",
		LastName:      "Khan",
		StreetAddress: "123 Main Street",
		City:          "Lahore",
		Province:      "Punjab",
		ZipCode:       "54000",
		Phone:         "3001234567",
		Email:         "ali@example.com",
	}
}

func TestValidator_ValidInput(t *testing.T) {
	cv := NewCheckoutValidator()

	normalized, errs := cv.Validate(validInput())
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if normalized != validInput() {
		t.Errorf("valid input must come back unchanged")
	}
}

func TestValidator_Idempotent(t *testing.T) {
	cv := NewCheckoutValidator()

	first, errs := cv.Validate(validInput())
	if errs != nil {
		t.Fatalf("first pass: %v", errs)
	}
	second, errs := cv.Validate(first)
	if errs != nil {
		t.Fatalf("second pass: %v", errs)
	}
	if first != second {
		t.Errorf("re-validation must yield the same value")
	}
}

func TestValidator_PerFieldRules(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*domain.CustomerInput)
		wantField string
	}{
		{"first name too short", func(c *domain.CustomerInput) { c.FirstName = "A" }, "firstName"},
		{"first name too long", func(c *domain.CustomerInput) { c.FirstName = strings.Repeat("a", 51) }, "firstName"},
		{"last name too short", func(c *domain.CustomerInput) { c.LastName = "K" }, "lastName"},
		{"street too short", func(c *domain.CustomerInput) { c.StreetAddress = "1 St" }, "streetAddress"},
		{"street too long", func(c *domain.CustomerInput) { c.StreetAddress = strings.Repeat("x", 101) }, "streetAddress"},
		{"city empty", func(c *domain.CustomerInput) { c.City = "" }, "city"},
		{"city too long", func(c *domain.CustomerInput) { c.City = strings.Repeat("c", 51) }, "city"},
		{"unknown province", func(c *domain.CustomerInput) { c.Province = "Texas" }, "province"},
		{"province empty", func(c *domain.CustomerInput) { c.Province = "" }, "province"},
		{"zip not numeric", func(c *domain.CustomerInput) { c.ZipCode = "ABCDE" }, "zipCode"},
		{"zip too short", func(c *domain.CustomerInput) { c.ZipCode = "1234" }, "zipCode"},
		{"zip too long", func(c *domain.CustomerInput) { c.ZipCode = "12345678901" }, "zipCode"},
		{"phone too short", func(c *domain.CustomerInput) { c.Phone = "300123456" }, "phone"},
		{"phone too long", func(c *domain.CustomerInput) { c.Phone = "30012345678" }, "phone"},
		{"phone not digits", func(c *domain.CustomerInput) { c.Phone = "03001-2345" }, "phone"},
		{"bad email", func(c *domain.CustomerInput) { c.Email = "not-an-email" }, "email"},
		{"email empty", func(c *domain.CustomerInput) { c.Email = "" }, "email"},
	}

	cv := NewCheckoutValidator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			_, errs := cv.Validate(input)
			if errs == nil {
				t.Fatalf("expected a validation error on %s", tc.wantField)
			}
			if _, ok := errs[tc.wantField]; !ok {
				t.Errorf("expected error keyed by %q, got %v", tc.wantField, errs)
			}
			if len(errs) != 1 {
				t.Errorf("only %s should fail, got %v", tc.wantField, errs)
			}
		})
	}
}

func TestValidator_ZipCodeBoundaries(t *testing.T) {
	cases := []struct {
		zip  string
		want bool
	}{
		{"1234", false},
		{"12345", true},
		{"1234567890", true},
		{"12345678901", false},
	}

	cv := NewCheckoutValidator()
	for _, tc := range cases {
		input := validInput()
		input.ZipCode = tc.zip

		_, errs := cv.Validate(input)
		if got := errs == nil; got != tc.want {
			t.Errorf("zip %q: accepted=%v, want %v (errs=%v)", tc.zip, got, tc.want, errs)
		}
	}
}

func TestValidator_AllInvalidFieldsReported(t *testing.T) {
	cv := NewCheckoutValidator()

	// Fields are validated independently: every invalid field shows up.
	_, errs := cv.Validate(domain.CustomerInput{})
	if errs == nil {
		t.Fatal("expected errors for an empty form")
	}

	for _, field := range []string{"firstName", "lastName", "streetAddress", "city", "province", "zipCode", "phone", "email"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %q in error map, got %v", field, errs)
		}
	}
	if _, ok := errs["additionalNotes"]; ok {
		t.Error("additionalNotes is optional and must not be reported")
	}
}

func TestValidator_KnownMessages(t *testing.T) {
	cv := NewCheckoutValidator()

	input := validInput()
	input.ZipCode = "ABCDE"
	input.Phone = "12"
	input.Email = "nope"

	_, errs := cv.Validate(input)
	if errs["zipCode"] != "ZIP code must be a number" {
		t.Errorf("zipCode message: %q", errs["zipCode"])
	}
	if errs["phone"] != "Phone number must be 10 digits" {
		t.Errorf("phone message: %q", errs["phone"])
	}
	if errs["email"] != "Invalid email format" {
		t.Errorf("email message: %q", errs["email"])
	}
}

func TestValidator_OptionalNotes(t *testing.T) {
	cv := NewCheckoutValidator()

	input := validInput()
	input.AdditionalNotes = "leave at the gate"

	if _, errs := cv.Validate(input); errs != nil {
		t.Fatalf("notes are free-form, got %v", errs)
	}
}
