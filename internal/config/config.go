package config

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	// getEnvOr returns the env var value or a fallback when unset.
	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	var viewers []string
	for _, pw := range strings.Split(getEnvOr("VIEWER_PASSWORDS", ""), ",") {
		if pw = strings.TrimSpace(pw); pw != "" {
			viewers = append(viewers, pw)
		}
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: getEnvOr("MIGRATIONS_DIR", "./migrations"),
		Port:          getEnv("PORT"),
		TeamName:      getEnvOr("TEAM_NAME", "Entes FC"),
		PhotosDir:     getEnvOr("PHOTOS_DIR", "./photos"),
		Turso: TursoConfig{
			PrimaryURL: getEnvOr("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOr("TURSO_AUTH_TOKEN", ""),
		},
		Slack: SlackConfig{
			Token:     getEnvOr("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnvOr("SLACK_CHANNEL_ID", ""),
		},
		Auth: AuthConfig{
			AdminPassword:   getEnv("ADMIN_PASSWORD"),
			ViewerPasswords: viewers,
		},
		ProjectID: getEnvOr("GCP_PROJECT", ""),
	}
	return cfg
}
