package config

// HTTPConfig contains HTTP client configuration
type HTTPConfig struct {
	TimeoutMS int `yaml:"timeout_ms" validate:"gte=0"`
}

// ProbeConfig configures the portal availability probe
type ProbeConfig struct {
	CacheTTLMS int `yaml:"cache_ttl_ms" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	DataRoot     string      `yaml:"data_root"`
	KeepArchives bool        `yaml:"keep_archives"`
	HTTP         HTTPConfig  `yaml:"http"`
	Probe        ProbeConfig `yaml:"probe"`
}
