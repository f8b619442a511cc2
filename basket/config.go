// Package basket stores what the user enters between two runs of the
// optimizer: the global default rates and the list of items.
//
// Default rates live in a TOML config file, items in a JSONL file, one item
// per line. Items without their own rates inherit the defaults when they are
// resolved into cashback.Item values.
package basket

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/etnz/cashback"
)

// DefaultCurrency is the currency of a basket without configuration.
const DefaultCurrency = "SGD"

// Config holds the global settings applied to every item.
type Config struct {
	Currency string        `toml:"currency" validate:"required,len=3,uppercase"`
	Earn     cashback.Rate `toml:"earn"`
	Spend    cashback.Rate `toml:"spend"`
}

// DefaultConfig returns the configuration used when none is saved.
func DefaultConfig() Config {
	return Config{
		Currency: DefaultCurrency,
		Earn:     cashback.DefaultRates.Earn,
		Spend:    cashback.DefaultRates.Spend,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig reads the configuration at 'path'. Keys absent from the file
// keep their default value. A missing file returns the default configuration
// and an error matching fs.ErrNotExist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), err
		}
		return DefaultConfig(), fmt.Errorf("could not decode config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig validates and writes the configuration at 'path'.
func SaveConfig(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
