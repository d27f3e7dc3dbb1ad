package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"

	AuthOpen = "open"
	AuthJWT  = "jwt"
)

type Config struct {
	Env               string        `mapstructure:"ENV"`
	PrimaryPort       int           `mapstructure:"PRIMARY_PORT"`
	CompanionPort     int           `mapstructure:"COMPANION_PORT"`
	StoreDriver       string        `mapstructure:"STORE_DRIVER"`
	StrictTransitions bool          `mapstructure:"STRICT_TRANSITIONS"`
	RequestTimeout    time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	AuthMode          string        `mapstructure:"AUTH_MODE"`
	AuthJWTSecret     string        `mapstructure:"AUTH_JWT_SECRET"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`

	BookingsTable       string `mapstructure:"BOOKINGS_TABLE"`
	AppointmentsTable   string `mapstructure:"APPOINTMENTS_TABLE"`
	InvoicesTable       string `mapstructure:"INVOICES_TABLE"`
	PetsTable           string `mapstructure:"PETS_TABLE"`
	MedicalRecordsTable string `mapstructure:"MEDICAL_RECORDS_TABLE"`
}

var defaults = map[string]any{
	"ENV":                   "development",
	"PRIMARY_PORT":          8080,
	"COMPANION_PORT":        8081,
	"STORE_DRIVER":          StoreDynamoDB,
	"STRICT_TRANSITIONS":    false,
	"REQUEST_TIMEOUT":       "10s",
	"AUTH_MODE":             AuthOpen,
	"AUTH_JWT_SECRET":       "",
	"AWS_REGION":            "us-east-1",
	"AWS_ACCESS_KEY_ID":     "local",
	"AWS_SECRET_ACCESS_KEY": "local",
	"DYNAMODB_ENDPOINT":     "",
	"BOOKINGS_TABLE":        "bookings",
	"APPOINTMENTS_TABLE":    "appointments",
	"INVOICES_TABLE":        "invoices",
	"PETS_TABLE":            "pets",
	"MEDICAL_RECORDS_TABLE": "medical_records",
}

// Load reads the environment and an optional .env file, then validates.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, def := range defaults {
		v.SetDefault(key, def)
		// Bind explicitly so Unmarshal sees env-only keys
		_ = v.BindEnv(key)
	}

	// A missing .env is fine
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) UsesMemoryStore() bool {
	return c.StoreDriver == StoreMemory
}

// Validate checks that the configuration is safe to run.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDynamoDB, StoreMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDynamoDB, StoreMemory, c.StoreDriver)
	}

	switch c.AuthMode {
	case AuthOpen:
	case AuthJWT:
		if c.AuthJWTSecret == "" {
			return fmt.Errorf("AUTH_JWT_SECRET is required when AUTH_MODE is %q", AuthJWT)
		}
	default:
		return fmt.Errorf("AUTH_MODE must be %q or %q, got %q", AuthOpen, AuthJWT, c.AuthMode)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if c.PrimaryPort <= 0 || c.CompanionPort <= 0 {
		return fmt.Errorf("ports must be positive (primary %d, companion %d)", c.PrimaryPort, c.CompanionPort)
	}
	if c.PrimaryPort == c.CompanionPort {
		return fmt.Errorf("PRIMARY_PORT and COMPANION_PORT must differ, both are %d", c.PrimaryPort)
	}
	return nil
}
