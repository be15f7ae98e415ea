// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The data root and config path can be overridden through environment
// variables (BIKESHARE_DATA_ROOT, BIKESHARE_CONFIG).
package config
