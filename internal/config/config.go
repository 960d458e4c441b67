package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	AppPort           string
	AppEnv            string
	DbDriver          string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	SqlitePath        string
	TrustedProxies    []string
	TranslationFolder string
	Seed              SeedConfig
}

// SeedConfig controls the demo task set installed into the in-memory store
// after startup. File wins over generation when set.
type SeedConfig struct {
	Enabled bool
	Count   int
	Delay   time.Duration
	File    string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		AppEnv:            getEnv("APP_ENV", "production"),
		DbDriver:          strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "teamboard"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "teamboard"),
		DbName:            getEnv("MYSQL_DATABASE", "teamboard"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		SqlitePath:        getEnv("SQLITE_PATH", "teamboard.db"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		Seed: SeedConfig{
			Enabled: getEnvBool("SEED_DEMO_TASKS", false),
			Count:   getEnvInt("SEED_TASK_COUNT", 20),
			Delay:   getEnvDuration("SEED_DELAY", time.Second),
			File:    getEnv("SEED_FILE", ""),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
