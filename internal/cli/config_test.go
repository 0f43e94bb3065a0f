package cli

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfig_ViperOverridesDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("analysis.default_genre", "mystery")
	viper.Set("cache.enabled", false)
	viper.Set("concurrency.workers", 9)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Analysis.DefaultGenre != "mystery" {
		t.Errorf("default_genre = %q, want mystery", cfg.Analysis.DefaultGenre)
	}
	if cfg.Cache.Enabled {
		t.Error("cache.enabled = true, want false")
	}
	if cfg.Concurrency.Workers != 9 {
		t.Errorf("workers = %d, want 9", cfg.Concurrency.Workers)
	}
	// Keys the user never set keep their defaults.
	if cfg.Analysis.MaxTextBytes != 8_000_000 {
		t.Errorf("max_text_bytes = %d, want default 8000000", cfg.Analysis.MaxTextBytes)
	}
}

func TestBuildConfig_FlagBeatsConfigValue(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("analysis.max_text_bytes", 1024)

	cfg, err := buildConfig(analyzeCmd)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.Analysis.MaxTextBytes != 1024 {
		t.Errorf("max_text_bytes = %d, want config value 1024", cfg.Analysis.MaxTextBytes)
	}

	if err := analyzeCmd.Flags().Set("max-bytes", "2048"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	defer func() {
		analyzeCmd.Flags().Lookup("max-bytes").Changed = false
		maxBytes = 8_000_000
	}()

	cfg, err = buildConfig(analyzeCmd)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.Analysis.MaxTextBytes != 2048 {
		t.Errorf("max_text_bytes = %d, want flag value 2048", cfg.Analysis.MaxTextBytes)
	}
}
