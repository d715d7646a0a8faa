package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,,")
	t.Setenv("SERVICE_JWT_TTL", "2h")
	t.Setenv("REDIS_HOST", "")

	cfg := Load()

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 2*time.Hour, cfg.App.JWTTTL)
	assert.Equal(t, "", cfg.RedisAddr())
	assert.Equal(t, "topic", cfg.MQ.ExchangeType)
}

func TestConfig_DSNs(t *testing.T) {
	cfg := Config{
		DB: DB{User: "app", Password: "p@ss", Name: "servija", Host: "db", Port: "5432", SSLMode: "disable"},
		MQ: MQ{User: "guest", Password: "guest", Host: "mq", AmqpPort: "5672", Vhost: "/"},
		Redis: Redis{
			Host: "cache",
			Port: "6379",
		},
	}

	dsn, err := cfg.DBDSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://app:p%40ss@db:5432/servija?sslmode=disable", dsn)

	amqp, err := cfg.AMQPDSN()
	require.NoError(t, err)
	assert.Equal(t, "amqp://guest:guest@mq:5672/%2F", amqp)

	assert.Equal(t, "cache:6379", cfg.RedisAddr())

	_, err = Config{}.DBDSN()
	require.Error(t, err)
	_, err = Config{}.AMQPDSN()
	require.Error(t, err)
}
