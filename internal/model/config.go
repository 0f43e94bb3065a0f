package model

import "time"

// Config is the full runtime configuration.
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis" json:"analysis"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Progress    ProgressConfig    `yaml:"progress" json:"progress"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// AnalysisConfig controls manuscript intake and analyzer defaults.
type AnalysisConfig struct {
	DefaultGenre string `yaml:"default_genre" json:"default_genre"`
	MaxTextBytes int64  `yaml:"max_text_bytes" json:"max_text_bytes"`
}

// CacheConfig controls the report cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// ProgressConfig throttles progress messages emitted across the async
// boundary. Zero EventsPerSecond disables throttling. Terminal messages
// are never dropped.
type ProgressConfig struct {
	EventsPerSecond float64 `yaml:"events_per_second" json:"events_per_second"`
	Burst           int     `yaml:"burst" json:"burst"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			DefaultGenre: DefaultGenre,
			MaxTextBytes: 8_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // resolved to ~/.manuscan/cache by the CLI
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Progress: ProgressConfig{
			EventsPerSecond: 0, // unthrottled
			Burst:           16,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
