package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	TeamName      string
	PhotosDir     string
	Turso         TursoConfig
	Slack         SlackConfig
	Auth          AuthConfig
	ProjectID     string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

// AuthConfig carries the shared passwords that resolve to a request role.
type AuthConfig struct {
	AdminPassword   string
	ViewerPasswords []string
}
