package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> any (a T value)
)

// Load fills cfg from environment variables using `env` struct tags.
// A .env file in the working directory is loaded once on first use; values
// already present in the environment win. The first successful load for a
// type is cached and copied into cfg on later calls.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is normal outside development.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}

	actual, _ := cache.LoadOrStore(key, loaded)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on error. Intended for startup code.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
