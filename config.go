package statusmap

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for status maps.
type Config struct {
	CacheCapacity int `env:"STATUSMAP_CACHE_CAPACITY" envDefault:"512"` // CacheCapacity bounds the private reachability cache of each map.
}

var defaultEnvLoaded sync.Once

// LoadConfig reads Config from environment variables, loading the default
// .env file once per process beforehand. Pass the result to New via
// WithConfig.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParseConfig, err)
	}
	return cfg, nil
}
