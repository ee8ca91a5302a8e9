package repository

import "os"

// getenvDefault resolves table-name overrides without pulling the full
// config object into the repository layer.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
