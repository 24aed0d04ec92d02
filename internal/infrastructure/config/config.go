package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable process configuration. It is loaded once in main
// and injected into every constructor; nothing else reads the environment.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret    string `env:"JWT_SECRET"`
	AdminKeyHash string `env:"ADMIN_KEY_HASH"`

	Carrier CarrierConfig
	CMS     CMSConfig
	Origin  OriginConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// CarrierConfig holds the settings for the third-party shipment API.
type CarrierConfig struct {
	BaseURL     string `env:"CARRIER_BASE_URL, default=https://api.shipengine.com"`
	APIKey      string `env:"CARRIER_API_KEY"`
	CarrierID   string `env:"CARRIER_ID,       default=se-1861706"`
	ServiceCode string `env:"SERVICE_CODE,     default=fedex_ground"`
}

// CMSConfig holds the settings for the Sanity-style document store that
// owns customer and order documents.
type CMSConfig struct {
	BaseURL    string `env:"CMS_BASE_URL"`
	ProjectID  string `env:"CMS_PROJECT_ID"`
	Dataset    string `env:"CMS_DATASET,     default=production"`
	APIVersion string `env:"CMS_API_VERSION, default=v2025-01-07"`
	Token      string `env:"CMS_TOKEN"`
}

// OriginConfig is the fixed warehouse address every shipment ships from.
type OriginConfig struct {
	Name       string `env:"ORIGIN_NAME,        default=Furniro Warehouse"`
	Address    string `env:"ORIGIN_ADDRESS,     default=123 Main St"`
	City       string `env:"ORIGIN_CITY,        default=Austin"`
	State      string `env:"ORIGIN_STATE,       default=TX"`
	PostalCode string `env:"ORIGIN_POSTAL_CODE, default=78756"`
	Country    string `env:"ORIGIN_COUNTRY,     default=US"`
	Phone      string `env:"ORIGIN_PHONE,       default=+1 555-123-4567"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=furniro_checkout"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
