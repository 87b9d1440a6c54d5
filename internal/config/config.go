package config

import "os"

// Get returns the environment value for key, or fallback when unset or
// empty. Secrets and connection strings stay in the environment; only
// defaults live in code.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
