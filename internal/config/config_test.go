package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_DRIVER", "SEED_DEMO_TASKS", "SEED_TASK_COUNT", "SEED_DELAY", "TRUSTED_PROXIES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	conf := LoadConfig()

	assert.Equal(t, "8080", conf.AppPort)
	assert.Equal(t, DriverMySQL, conf.DbDriver)
	assert.False(t, conf.Seed.Enabled)
	assert.Equal(t, 20, conf.Seed.Count)
	assert.Equal(t, time.Second, conf.Seed.Delay)
	assert.Nil(t, conf.TrustedProxies)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/board.db")
	t.Setenv("SEED_DEMO_TASKS", "true")
	t.Setenv("SEED_TASK_COUNT", "35")
	t.Setenv("SEED_DELAY", "1500ms")
	t.Setenv("SEED_FILE", "fixtures/tasks.json")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1, ,192.168.1.0/24 ")

	conf := LoadConfig()

	assert.True(t, conf.IsDevelopment())
	assert.Equal(t, DriverSQLite, conf.DbDriver)
	assert.Equal(t, "/tmp/board.db", conf.SqlitePath)
	assert.Equal(t, SeedConfig{Enabled: true, Count: 35, Delay: 1500 * time.Millisecond, File: "fixtures/tasks.json"}, conf.Seed)
	assert.Equal(t, []string{"10.0.0.1", "192.168.1.0/24"}, conf.TrustedProxies)
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("SEED_TASK_COUNT", "many")
	t.Setenv("SEED_DELAY", "soon")
	t.Setenv("SEED_DEMO_TASKS", "maybe")

	assert.Equal(t, 7, getEnvInt("SEED_TASK_COUNT", 7))
	assert.Equal(t, time.Minute, getEnvDuration("SEED_DELAY", time.Minute))
	assert.True(t, getEnvBool("SEED_DEMO_TASKS", true))
}
