package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Config holds the complete application configuration, loadable from
// environment variables (CINEMA_ prefix), flags, or YAML config files.
type Config struct {
	Rows        int    `default:"7" usage:"Number of rows in the hall"`
	SeatsPerRow int    `default:"10" usage:"Number of seats in each row" flag:"seats-per-row"`
	BasePrice   string `default:"10" usage:"Base ticket price before discounts" flag:"base-price"`
	ExportPath  string `default:"" usage:"Write a JSON seat map to this path when the session ends" flag:"export-path"`
}

// LoadConfig loads and validates configuration from environment variables,
// flags, and YAML config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CINEMA",
		Files:     []string{"config.yaml", "/etc/cinema/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Rows <= 0 {
		return errors.New("rows must be a positive integer")
	}
	if c.SeatsPerRow <= 0 {
		return errors.New("seats per row must be a positive integer")
	}
	if _, err := c.basePrice(); err != nil {
		return err
	}
	return nil
}

// basePrice parses the configured base price.
func (c *Config) basePrice() (decimal.Decimal, error) {
	base, err := decimal.NewFromString(c.BasePrice)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "parse base price %q", c.BasePrice)
	}
	if base.IsNegative() {
		return decimal.Zero, errors.Errorf("base price must not be negative, got %s", base)
	}
	return base, nil
}
