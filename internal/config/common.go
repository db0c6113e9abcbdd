package config

import (
	"os"
	"strings"
)

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvFromFile(key string, defaultValue string) string {
	path, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return defaultValue
	}
	return strings.TrimSpace(string(content))
}
