package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Map    MapConfig    `mapstructure:"map"`
	Draw   DrawConfig   `mapstructure:"draw"`
	Data   DataConfig   `mapstructure:"data"`
	Export ExportConfig `mapstructure:"export"`
	Legend LegendConfig `mapstructure:"legend"`
	Log    LogConfig    `mapstructure:"log"`
}

type MapConfig struct {
	CenterLat float64 `mapstructure:"center_lat"`
	CenterLon float64 `mapstructure:"center_lon"`
	Zoom      float64 `mapstructure:"zoom"`
}

type DrawConfig struct {
	// Tolerance is the squared distance, in degrees², under which a click closes the shape.
	Tolerance float64 `mapstructure:"tolerance"`
}

type DataConfig struct {
	Path string `mapstructure:"path"`
}

type ExportConfig struct {
	Path string `mapstructure:"path"`
}

type LegendConfig struct {
	Title string `mapstructure:"title"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Load reads configuration from .env, an optional geodash.yaml and GEODASH_* variables.
func Load() (*Config, error) {
	_ = godotenv.Load() // OK if missing

	v := viper.New()

	v.SetDefault("map.center_lat", 57.671667)
	v.SetDefault("map.center_lon", 11.980833)
	v.SetDefault("map.zoom", 16)
	v.SetDefault("draw.tolerance", 1e-6)
	v.SetDefault("data.path", "")
	v.SetDefault("export.path", "shape.geojson")
	v.SetDefault("legend.title", "Sea-level Rise Vulnerability")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "geodash.log")

	v.SetConfigName("geodash")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// GEODASH_DRAW_TOLERANCE → draw.tolerance
	v.SetEnvPrefix("GEODASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Map.CenterLat < -90 || c.Map.CenterLat > 90 {
		errs = append(errs, fmt.Sprintf("map.center_lat must be -90..90, got %v", c.Map.CenterLat))
	}
	if c.Map.CenterLon < -180 || c.Map.CenterLon > 180 {
		errs = append(errs, fmt.Sprintf("map.center_lon must be -180..180, got %v", c.Map.CenterLon))
	}
	if c.Map.Zoom < 0 || c.Map.Zoom > 24 {
		errs = append(errs, fmt.Sprintf("map.zoom must be 0-24, got %v", c.Map.Zoom))
	}
	if math.IsNaN(c.Draw.Tolerance) || math.IsInf(c.Draw.Tolerance, 0) || c.Draw.Tolerance <= 0 {
		errs = append(errs, fmt.Sprintf("draw.tolerance must be a positive finite number, got %v", c.Draw.Tolerance))
	}
	if c.Export.Path == "" {
		errs = append(errs, "export.path is required")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
