package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Defaults applied to chart requests that leave an option empty.
type Defaults struct {
	Ayanamsa    string `mapstructure:"ayanamsa"`
	HouseSystem string `mapstructure:"house_system"`
	NodeType    string `mapstructure:"node_type"`
}

// Config holds all runtime configuration for the chart server.
// Values are populated from vedic.yaml, VEDIC_* env vars, and CLI flags.
type Config struct {
	Port           int           `mapstructure:"port"`
	EphemerisPath  string        `mapstructure:"ephemeris_path"`
	CitiesFile     string        `mapstructure:"cities_file"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	PlacesCacheTTL time.Duration `mapstructure:"places_cache_ttl"`
	PlacesLimit    int           `mapstructure:"places_limit"`
	CalendarYears  int           `mapstructure:"calendar_years"`
	Verbose        bool          `mapstructure:"verbose"`
	Defaults       Defaults      `mapstructure:"defaults"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("port", 8001)
	viper.SetDefault("ephemeris_path", "")
	viper.SetDefault("cities_file", "world_cities.json")
	viper.SetDefault("allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	viper.SetDefault("places_cache_ttl", time.Hour)
	viper.SetDefault("places_limit", 7)
	viper.SetDefault("calendar_years", 10)
	viper.SetDefault("verbose", false)
	viper.SetDefault("defaults.ayanamsa", "lahiri")
	viper.SetDefault("defaults.house_system", "equal")
	viper.SetDefault("defaults.node_type", "mean")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}
	if cfg.PlacesLimit <= 0 {
		cfg.PlacesLimit = 7
	}
	if cfg.CalendarYears <= 0 {
		cfg.CalendarYears = 10
	}
	if cfg.PlacesCacheTTL <= 0 {
		cfg.PlacesCacheTTL = time.Hour
	}
	return cfg, nil
}
