package environment

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envFile = ".env"

// LoadEnvironmentVariables reads the optional .env file from the current
// working directory. Variables already present in the environment win over
// the file contents.
func LoadEnvironmentVariables() {
	if _, err := os.Stat(envFile); err != nil {
		return
	}

	log.Println("Environment: Loading `" + envFile + "`")
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("Environment: Could not load `%s`: %v", envFile, err)
	}
}

// GetEnv returns the value of the environment variable named by key, or
// fallback if the variable is unset or empty.
func GetEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by
// key, or fallback if the variable is unset, empty, or not a valid integer.
func GetEnvInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return fallback
}

// IsEnabled reports whether the environment variable named by key is set to
// a truthy value ("true", "1", "yes").
func IsEnabled(key string) bool {
	switch os.Getenv(key) {
	case "true", "TRUE", "True", "1", "yes":
		return true
	}
	return false
}
