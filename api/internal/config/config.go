package config

import (
	"net"
	"net/url"
	"os"
	"strings"
)

type Config struct {
	Port string

	TelegramBotToken string
	VKToken          string
	VKGroupID        string

	QuestionsFile string
	QuestionsDir  string

	SessionDriver string // "postgres" | "sqlite"
	SessionDSN    string
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// Load reads the process configuration from the environment. Tokens are
// optional here: each front end validates the one it actually needs.
func Load() *Config {
	driver := getEnv("SESSION_DB_DRIVER", "postgres")
	return &Config{
		Port: getEnv("PORT", "8000"),

		TelegramBotToken: os.Getenv("TG_BOT_TOKEN"),
		VKToken:          os.Getenv("VK_API_TOKEN"),
		VKGroupID:        os.Getenv("VK_GROUP_ID"),

		QuestionsFile: getEnv("ALL_QUESTIONS_FILE", "questions.json"),
		QuestionsDir:  getEnv("QUESTIONS_DIRECTORY", "questions/"),

		SessionDriver: driver,
		SessionDSN:    resolveDSN(driver),
	}
}

func resolveDSN(driver string) string {
	if driver == "sqlite" {
		return getEnv("SESSION_DB_DSN", "file:quiz-sessions.db")
	}
	// Prefer DATABASE_URL if provided
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		return v
	}
	// Build DSN from POSTGRES_* / PG* env vars (single-container default)
	user := getEnv("POSTGRES_USER", "quizbot")
	pass := os.Getenv("POSTGRES_PASSWORD")
	host := getEnv("PGHOST", "db")
	port := getEnv("PGPORT", "5432")
	db := getEnv("POSTGRES_DB", "quizbot")

	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, pass),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + db,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
