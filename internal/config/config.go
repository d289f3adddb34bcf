package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix namespaces the environment variables consulted by Load.
const envPrefix = "POCOMBINE"

// Config represents the complete application configuration.
type Config struct {
	// BaseDir holds the year folders with the source workbooks.
	BaseDir string `yaml:"base_dir" envconfig:"BASE_DIR" validate:"required"`
	// OutputDir receives the combined per-year files and the ledgers.
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	// OutputFormat selects the combined table format.
	OutputFormat string `yaml:"output_format" envconfig:"OUTPUT_FORMAT" validate:"oneof=xlsx csv"`
	// SkipProcessed enables the incremental ledger check.
	SkipProcessed bool `yaml:"skip_processed" envconfig:"SKIP_PROCESSED"`
	// Year restricts a run to a single year folder when set.
	Year string `yaml:"year" envconfig:"YEAR"`

	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseDir:       "PO",
		OutputDir:     "combined-data",
		OutputFormat:  "xlsx",
		SkipProcessed: true,
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/pocombine.log",
		},
	}
}

// Load builds the configuration from defaults, the optional config file, and
// environment variables, then validates it.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
