// Package config loads process configuration for launchboard commands.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every `env` struct tag resolved by ParseEnv.
const EnvPrefix = "LAUNCHBOARD_"

// ParseEnv loads configuration from the process environment.
//
// Struct tags name the variable without the shared prefix, so a field tagged
// `env:"HTTP_ADDR"` is read from LAUNCHBOARD_HTTP_ADDR.
func ParseEnv(target any) error {
	return parse(target, env.Options{Prefix: EnvPrefix})
}

// ParseEnvMap loads configuration from environ instead of the process
// environment. Keys carry the full prefixed name.
func ParseEnvMap(target any, environ map[string]string) error {
	if environ == nil {
		environ = map[string]string{}
	}
	return parse(target, env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parse(target any, opts env.Options) error {
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
