package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"statplug/internal/errors"
)

// Config represents the complete plugin configuration
type Config struct {
	Menus    MenuConfig
	Tests    TestConfig
	IO       IOConfig
	Sampling SamplingConfig
}

// MenuConfig holds the capability-group names the actions register under
type MenuConfig struct {
	TestMenu string
	DistMenu string
}

// TestConfig holds statistical-test defaults
type TestConfig struct {
	// VarianceGate is the F-test significance threshold that decides
	// Student vs Welch when the t-test kind is "auto".
	VarianceGate float64
}

// IOConfig holds file-type settings for distribution records and for
// tabular sample files
type IOConfig struct {
	FileSlug        string
	Extensions      []string
	TableSlug       string
	TableExtensions []string
}

// SamplingConfig holds random-sampling settings
type SamplingConfig struct {
	DefaultSize int
	DefaultSeed uint64
	MaxDraws    int
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Menus: MenuConfig{
			TestMenu: "tools/stats",
			DistMenu: "tools/distributions",
		},
		Tests: TestConfig{
			VarianceGate: 0.05,
		},
		IO: IOConfig{
			FileSlug:        "stats-dist",
			Extensions:      []string{".dist.yaml", ".dist.yml"},
			TableSlug:       "stats-samples",
			TableExtensions: []string{".csv", ".xlsx"},
		},
		Sampling: SamplingConfig{
			DefaultSize: 100,
			DefaultSeed: 1,
			MaxDraws:    1_000_000,
		},
	}
}

// Load builds the configuration from defaults plus environment overrides.
// A local .env file is honored when present so development hosts can tweak
// settings without exporting variables.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional

	cfg := Default()
	cfg.Menus.TestMenu = getEnv("STATPLUG_TEST_MENU", cfg.Menus.TestMenu)
	cfg.Menus.DistMenu = getEnv("STATPLUG_DIST_MENU", cfg.Menus.DistMenu)
	cfg.IO.FileSlug = getEnv("STATPLUG_FILE_SLUG", cfg.IO.FileSlug)
	cfg.IO.TableSlug = getEnv("STATPLUG_TABLE_SLUG", cfg.IO.TableSlug)

	gate, err := getEnvFloat("STATPLUG_VARIANCE_GATE", cfg.Tests.VarianceGate)
	if err != nil {
		return nil, err
	}
	cfg.Tests.VarianceGate = gate

	maxDraws, err := getEnvInt("STATPLUG_MAX_DRAWS", cfg.Sampling.MaxDraws)
	if err != nil {
		return nil, err
	}
	cfg.Sampling.MaxDraws = maxDraws

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency
func (c *Config) Validate() error {
	if c.Menus.TestMenu == "" || c.Menus.DistMenu == "" {
		return errors.NewConfigError("menu names cannot be empty")
	}
	if c.Tests.VarianceGate <= 0 || c.Tests.VarianceGate >= 1 {
		return errors.NewConfigError("variance gate must lie in (0, 1)")
	}
	if c.IO.FileSlug == "" || c.IO.TableSlug == "" {
		return errors.NewConfigError("file slugs cannot be empty")
	}
	if c.IO.FileSlug == c.IO.TableSlug {
		return errors.NewConfigError("file slugs must be distinct")
	}
	if len(c.IO.Extensions) == 0 || len(c.IO.TableExtensions) == 0 {
		return errors.NewConfigError("at least one file extension is required per file type")
	}
	if c.Sampling.MaxDraws <= 0 || c.Sampling.DefaultSize <= 0 {
		return errors.NewConfigError("sampling sizes must be positive")
	}
	if c.Sampling.DefaultSize > c.Sampling.MaxDraws {
		return errors.NewConfigError("default sample size exceeds the draw cap")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s must be a number", key)
	}
	return f, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "%s must be an integer", key)
	}
	return n, nil
}
