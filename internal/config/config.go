package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/battleship-arcade/internal/error"
	mb "github.com/saeidalz13/battleship-arcade/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	EnvPrefix = "BATTLESHIP_"
)

type Config struct {
	Stage                string `env:"STAGE" envDefault:"dev"`
	GridSize             int    `env:"GRID_SIZE" envDefault:"10"`
	Fleet                []int  `env:"FLEET" envDefault:"4,3,2" envSeparator:","`
	Seed                 int64  `env:"SEED" envDefault:"0"`
	MaxPlacementAttempts int    `env:"MAX_PLACEMENT_ATTEMPTS" envDefault:"10000"`
	TargetingMode        string `env:"TARGETING_MODE" envDefault:"anchor"`
	Lang                 string `env:"LANG" envDefault:"en"`
	PlayerName           string `env:"PLAYER_NAME" envDefault:"Player"`
	LogLevel             string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadDotEnv reads .env outside of production. A missing file
// is not an error; a broken one is.
func LoadDotEnv(path string) error {
	if os.Getenv(EnvPrefix+"STAGE") == StageProd {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load parses the BATTLESHIP_ prefixed environment and
// validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Stage != StageProd && c.Stage != StageDev {
		result = multierror.Append(result, cerr.ErrConfigField("STAGE", "must be either dev or prod"))
	}
	if c.GridSize <= 0 {
		result = multierror.Append(result, cerr.ErrConfigField("GRID_SIZE", "must be positive"))
	}
	if len(c.Fleet) == 0 {
		result = multierror.Append(result, cerr.ErrConfigField("FLEET", "must list at least one ship"))
	}
	for _, length := range c.Fleet {
		if length <= 0 {
			result = multierror.Append(result, cerr.ErrConfigField("FLEET", fmt.Sprintf("has non-positive length %d", length)))
		} else if c.GridSize > 0 && length > c.GridSize {
			result = multierror.Append(result, cerr.ErrConfigField("FLEET", fmt.Sprintf("length %d does not fit a grid of %d", length, c.GridSize)))
		}
	}
	if total := mb.Fleet(c.Fleet).TotalCells(); c.GridSize > 0 && total > c.GridSize*c.GridSize {
		result = multierror.Append(result, cerr.ErrConfigField("FLEET", fmt.Sprintf("covers %d cells, grid has %d", total, c.GridSize*c.GridSize)))
	}
	if c.MaxPlacementAttempts <= 0 {
		result = multierror.Append(result, cerr.ErrConfigField("MAX_PLACEMENT_ATTEMPTS", "must be positive"))
	}
	if _, ok := mb.ParseTargetingMode(c.TargetingMode); !ok {
		result = multierror.Append(result, cerr.ErrConfigField("TARGETING_MODE", "must be either anchor or advance"))
	}

	return result.ErrorOrNil()
}

func (c Config) TargetingModeValue() mb.TargetingMode {
	mode, _ := mb.ParseTargetingMode(c.TargetingMode)
	return mode
}

func (c Config) FleetValue() mb.Fleet {
	return mb.Fleet(c.Fleet).Clone()
}
