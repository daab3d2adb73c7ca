// Package config loads typed configuration structs from environment
// variables.
//
// Structs declare their variables with github.com/caarlos0/env tags. Load
// parses each struct type once per process and hands out copies afterwards;
// a .env file is loaded through github.com/joho/godotenv on first use.
// Parse skips the cache, which is handy in tests that change the environment.
//
//	type Config struct {
//		Secrets string `env:"COOKIE_SECRETS"`
//		Secure  bool   `env:"COOKIE_SECURE" envDefault:"false"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors wrap ErrParsingConfig; a nil target returns ErrNilPointer.
package config
