package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	devAPIBaseURL        = "http://localhost:4000"
	productionAPIBaseURL = "https://api.guialmeidapersonal.esp.br"
)

type Config struct {
	// Client side
	APIBaseURL string
	Locale     string
	StateDir   string

	// Dev server side
	Port                   string
	JWTSecret              string
	AppEnv                 string
	EnableDocs             bool
	DefaultTrainerEmail    string
	DefaultTrainerPassword string
	DefaultStudentEmail    string
	DefaultStudentPassword string
}

// LoadConfig resolves the client-side configuration. The API base URL comes
// from GA_API_URL when set, falls back to localhost in development, and
// defaults to the production domain otherwise.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	appEnv := normalizeEnv(getEnv("APP_ENV", "production"))

	return &Config{
		APIBaseURL:             resolveAPIBaseURL(appEnv),
		Locale:                 getEnv("GA_LOCALE", "pt-BR"),
		StateDir:               getEnv("GA_STATE_DIR", defaultStateDir()),
		Port:                   getEnv("PORT", "4000"),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		AppEnv:                 appEnv,
		EnableDocs:             getEnvBool("ENABLE_API_DOCS", false),
		DefaultTrainerEmail:    getEnv("DEFAULT_TRAINER_EMAIL", ""),
		DefaultTrainerPassword: getEnv("DEFAULT_TRAINER_PASSWORD", ""),
		DefaultStudentEmail:    getEnv("DEFAULT_STUDENT_EMAIL", ""),
		DefaultStudentPassword: getEnv("DEFAULT_STUDENT_PASSWORD", ""),
	}, nil
}

// LoadServerConfig is LoadConfig plus the requirements the dev server cannot
// run without.
func LoadServerConfig() (*Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func resolveAPIBaseURL(appEnv string) string {
	if url, exists := os.LookupEnv("GA_API_URL"); exists && url != "" {
		return strings.TrimRight(url, "/")
	}
	if appEnv == "development" || appEnv == "test" {
		return devAPIBaseURL
	}
	return productionAPIBaseURL
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home + "/.gapersonal"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.AppEnv == "development"
}
