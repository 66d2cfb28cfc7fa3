package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads .env.local then .env from the working directory.
// godotenv never overwrites variables that are already set, so the OS
// environment wins and .env.local wins over .env. Returns the files
// that were actually present.
func LoadDotEnv() []string {
	var loaded []string
	for _, f := range []string{".env.local", ".env"} {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
		loaded = append(loaded, f)
	}
	return loaded
}
