// Package env offers small helpers for reading process environment
// variables outside the envconfig-managed configuration.
package env

import "os"

// Get returns the named variable's value, or fallback when it is unset
// or empty.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
