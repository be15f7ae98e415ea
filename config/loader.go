package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration.
// The config file is searched at BIKESHARE_CONFIG (if set), then
// config.yml, then ./config/config.yml. A missing file is not an
// error: defaults apply.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	if p := os.Getenv("BIKESHARE_CONFIG"); p != "" {
		paths = append([]string{p}, paths...)
	}
	var cfg AppConfig
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
		break
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	applyDefaults(&Config)
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if root := os.Getenv("BIKESHARE_DATA_ROOT"); root != "" {
		cfg.DataRoot = root
	}
	if cfg.DataRoot == "" {
		cfg.DataRoot = "data/raw"
	}
	if cfg.HTTP.TimeoutMS == 0 {
		cfg.HTTP.TimeoutMS = 30000
	}
	if cfg.Probe.CacheTTLMS == 0 {
		cfg.Probe.CacheTTLMS = 300000
	}
}
