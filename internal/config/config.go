package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds every user-tunable knob. The registry connection block
// mirrors the API base url parts so the transport can be rebuilt from
// it alone.
type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Search   SearchConfig   `mapstructure:"search"`
	Versions VersionsConfig `mapstructure:"versions"`
	Preview  PreviewConfig  `mapstructure:"preview"`
}

type HTTPConfig struct {
	Host   string `mapstructure:"host"`
	Port   int    `mapstructure:"port"`
	Path   string `mapstructure:"path"`
	Secure bool   `mapstructure:"secure"`
}

type SearchConfig struct {
	Limit int `mapstructure:"limit"`
}

type VersionsConfig struct {
	Reverse bool `mapstructure:"reverse"`
}

type PreviewConfig struct {
	OpenAPI bool `mapstructure:"openapi"`
}

// Dir returns the per-user config directory, creating it if missing.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, AppID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Load reads config.yaml from the user config dir. A missing file is
// fine, defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	v.AddConfigPath(dir)

	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.path", "/apis/registry/v2/")
	v.SetDefault("http.secure", false)
	v.SetDefault("search.limit", 50)
	v.SetDefault("versions.reverse", false)
	v.SetDefault("preview.openapi", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
