package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, MailDeliveryDirect, cfg.MailDelivery)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, cfg.EmailUser, cfg.MailFrom)
	assert.Equal(t, "adventour:adventour@tcp(localhost:3306)/adventour?charset=utf8mb4&parseTime=True&loc=UTC", cfg.DSN())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAIL_DELIVERY", "QUEUE")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("MAIL_FROM", "bookings@adventour.test")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, MailDeliveryQueue, cfg.MailDelivery)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "bookings@adventour.test", cfg.MailFrom)
	assert.True(t, cfg.MinioUseSSL)
}

func TestLoadConfig_UnknownDeliveryFallsBackToDirect(t *testing.T) {
	t.Setenv("MAIL_DELIVERY", "carrier-pigeon")
	assert.Equal(t, MailDeliveryDirect, LoadConfig().MailDelivery)
}

func TestLoadConfig_EmptyValueDisablesBackend(t *testing.T) {
	t.Setenv("MEMCACHED_HOST", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("MONGO_URI", "")

	cfg := LoadConfig()

	assert.Empty(t, cfg.MemcachedHost)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.MongoURI)
	assert.Equal(t, "public", cfg.StaticDir)
}
