package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/claude/ftracker/internal/models"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig     `yaml:"server"`
	Auth      AuthConfig       `yaml:"auth"`
	Tailscale TailscaleConfig  `yaml:"tailscale"`
	Report    ReportConfig     `yaml:"report"`
	Packages  []models.Package `yaml:"packages"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

type ReportConfig struct {
	// KeepGoing reports every package even when an earlier one fails.
	KeepGoing bool `yaml:"keep_going"`
}

// SamplePackages is the built-in batch used when no packages are configured.
func SamplePackages() []models.Package {
	return []models.Package{
		{Code: "SWM", Readings: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Readings: []float64{15000, 1, 75}},
		{Code: "WLK", Readings: []float64{9000, 1, 75, 180}},
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Host: "127.0.0.1", Port: 8080},
		Tailscale: TailscaleConfig{Hostname: "ftracker"},
		Packages:  SamplePackages(),
	}
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads config from a YAML file over the defaults, then applies
// environment variable overrides. An empty path skips the file.
// Env vars use the prefix FTRACKER_ and underscore-separated paths:
//
//	FTRACKER_SERVER_HOST, FTRACKER_SERVER_PORT,
//	FTRACKER_AUTH_API_KEY,
//	FTRACKER_TAILSCALE_ENABLED, FTRACKER_TAILSCALE_HOSTNAME, FTRACKER_TAILSCALE_STATE_DIR,
//	FTRACKER_REPORT_KEEP_GOING
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// An explicit packages list replaces the samples.
		cfg.Packages = nil
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		if cfg.Packages == nil {
			cfg.Packages = SamplePackages()
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FTRACKER_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("FTRACKER_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("FTRACKER_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("FTRACKER_TAILSCALE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = b
		}
	}
	if v := os.Getenv("FTRACKER_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("FTRACKER_TAILSCALE_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
	if v := os.Getenv("FTRACKER_REPORT_KEEP_GOING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Report.KeepGoing = b
		}
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	for i, p := range c.Packages {
		if p.Code == "" {
			return fmt.Errorf("packages[%d].code is required", i)
		}
	}
	return nil
}
