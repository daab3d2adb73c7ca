package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the outcome of the first Load call for one config type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	entries sync.Map // reflect.Type -> *entry

	dotenvOnce sync.Once
)

// Load fills v from environment variables using `env` struct tags.
// A .env file in the working directory is read once, if present; variables
// already set in the environment win.
//
// Each config type is parsed once per process. Later calls for the same type
// receive a copy of the cached value, or the cached error.
//
//	var cfg securecookie.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	e, _ := entries.LoadOrStore(reflect.TypeFor[T](), &entry{})
	ent := e.(*entry)

	ent.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			ent.err = errors.Join(ErrParsingConfig, err)
			return
		}
		ent.value = parsed
	})

	if ent.err != nil {
		return ent.err
	}
	*v = ent.value.(T)
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Parse fills v from the environment without caching.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
