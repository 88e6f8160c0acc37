package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const DefaultAPIURL = "https://api.github.com"

type Config struct {
	GithubToken string `env:"GITHUB_TOKEN,required,notEmpty"`
	Repository  string `env:"GITHUB_REPOSITORY,required,notEmpty"`
	EventPath   string `env:"GITHUB_EVENT_PATH"`
	APIURL      string `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`

	PolicyPath      string `env:"GATEKEEPER_POLICY_PATH"`
	MaxFileSize     int64  `env:"GATEKEEPER_MAX_FILE_SIZE" envDefault:"-1"`
	SizeConcurrency int    `env:"GATEKEEPER_SIZE_CONCURRENCY" envDefault:"8"`
	DryRun          bool   `env:"GATEKEEPER_DRY_RUN"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFrom is Load with an explicit environment instead of the process one.
func LoadFrom(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if !strings.Contains(c.Repository, "/") {
		errs = append(errs, fmt.Errorf("GITHUB_REPOSITORY must be owner/repo, got %q", c.Repository))
	}
	if c.SizeConcurrency < 1 {
		errs = append(errs, fmt.Errorf("GATEKEEPER_SIZE_CONCURRENCY must be >= 1, got %d", c.SizeConcurrency))
	}
	if c.MaxFileSize < -1 {
		errs = append(errs, fmt.Errorf("GATEKEEPER_MAX_FILE_SIZE must be >= 0 (or -1 to use the policy), got %d", c.MaxFileSize))
	}
	return errors.Join(errs...)
}

// Enterprise reports whether the API root points somewhere other than github.com.
func (c *Config) Enterprise() bool {
	return c.APIURL != "" && strings.TrimSuffix(c.APIURL, "/") != DefaultAPIURL
}

// MaxFileSizeOverride returns the size limit set in the environment, if any.
func (c *Config) MaxFileSizeOverride() (int64, bool) {
	return c.MaxFileSize, c.MaxFileSize >= 0
}
