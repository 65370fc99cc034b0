package infra

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type PlacesConfig struct {
	Provider string `mapstructure:"provider"`
}

type GoogleConfig struct {
	MapsAPIKey string `mapstructure:"maps_api_key"`
	BaseURL    string `mapstructure:"base_url"`
}

type MapboxConfig struct {
	AccessToken string `mapstructure:"access_token"`
	BaseURL     string `mapstructure:"base_url"`
}

type HTTPConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	RateLimit  float64       `mapstructure:"rate_limit"`
	Burst      int           `mapstructure:"burst"`
}

type CacheConfig struct {
	Capacity        int           `mapstructure:"capacity"`
	AutocompleteTTL time.Duration `mapstructure:"autocomplete_ttl"`
	DetailsTTL      time.Duration `mapstructure:"details_ttl"`
	CandidatesTTL   time.Duration `mapstructure:"candidates_ttl"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Places PlacesConfig `mapstructure:"places"`
	Google GoogleConfig `mapstructure:"google"`
	Mapbox MapboxConfig `mapstructure:"mapbox"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Log    LogConfig    `mapstructure:"log"`
}

var envFiles = []string{".env", ".env.local"}

// Env names that do not follow the dotted-key convention.
var envBindings = map[string]string{
	"server.port":         "PORT",
	"google.maps_api_key": "GOOGLE_MAPS_API_KEY",
	"mapbox.access_token": "MAPBOX_ACCESS_TOKEN",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.mode", "release")
	v.SetDefault("places.provider", "google")
	v.SetDefault("google.maps_api_key", "")
	v.SetDefault("google.base_url", "https://places.googleapis.com/v1")
	v.SetDefault("mapbox.access_token", "")
	v.SetDefault("mapbox.base_url", "https://api.mapbox.com")
	v.SetDefault("http.timeout", 5*time.Second)
	v.SetDefault("http.max_retries", 2)
	v.SetDefault("http.rate_limit", 10)
	v.SetDefault("http.burst", 5)
	v.SetDefault("cache.capacity", 1024)
	v.SetDefault("cache.autocomplete_ttl", 60*time.Second)
	v.SetDefault("cache.details_ttl", 5*time.Minute)
	v.SetDefault("cache.candidates_ttl", 60*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// LoadEnvFiles reads .env then .env.local from the working directory.
// Variables already present in the environment are left untouched, and
// missing files are skipped.
func LoadEnvFiles() error {
	for _, name := range envFiles {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// LoadConfig builds the configuration from defaults, an optional yaml file
// at path and the environment. Credentials are not checked here.
func LoadConfig(path string) (*Config, error) {
	if err := LoadEnvFiles(); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		// The conventional name (SERVER_PORT) still wins over the short one.
		conventional := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, conventional, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Places.Provider {
	case "google", "mapbox":
	default:
		return fmt.Errorf("places.provider must be google or mapbox, got %q", c.Places.Provider)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Cache.Capacity <= 0 {
		return fmt.Errorf("cache.capacity must be positive, got %d", c.Cache.Capacity)
	}
	return nil
}
