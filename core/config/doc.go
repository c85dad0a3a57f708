// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use (joho/godotenv) and parses
// environment variables into struct fields with caarlos0/env:
//
//	import "github.com/dmitrymomot/fileserve/core/config"
//
//	var cfg static.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup
//	config.MustLoad(&cfg)
//
// Different types are cached independently, so packages can each declare
// their own config struct and load it wherever it is needed.
package config
