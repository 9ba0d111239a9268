package model

import "time"

// Config holds the complete application configuration.
type Config struct {
	Routing RoutingConfig `yaml:"routing" mapstructure:"routing"`
	HTTP    HTTPConfig    `yaml:"http" mapstructure:"http"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	LLM     LLMConfig     `yaml:"llm" mapstructure:"llm"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
}

// RoutingConfig controls the routing engine.
type RoutingConfig struct {
	// FastTrackDamageThreshold is the strict upper bound for fast-track
	// eligibility. It is read fresh at routing time so runtime overrides
	// take effect without a restart.
	FastTrackDamageThreshold float64 `yaml:"fast_track_damage_threshold" mapstructure:"fast_track_damage_threshold"`
}

// HTTPConfig controls the HTTP shell.
type HTTPConfig struct {
	Addr              string        `yaml:"addr" mapstructure:"addr"`
	MaxUploadBytes    int64         `yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`
	ReadTimeout       time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
}

// CacheConfig controls the shell-level response cache.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// LLMConfig controls the optional adjuster-note generator.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultFastTrackThreshold is used when no configuration is present.
const DefaultFastTrackThreshold = 25000.0

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Routing: RoutingConfig{
			FastTrackDamageThreshold: DefaultFastTrackThreshold,
		},
		HTTP: HTTPConfig{
			Addr:              ":8080",
			MaxUploadBytes:    10 * 1024 * 1024,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			RequestsPerSecond: 20,
			Burst:             40,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             5 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "gpt-4o-mini",
			Timeout:   30,
			MaxTokens: 400,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
