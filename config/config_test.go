package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("EMAIL_FROM_NAME", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017/", cfg.Mongo.URI)
	assert.Equal(t, "thecosmeticshop", cfg.Mongo.DBName)
	assert.Equal(t, "The Cosmetic Shop", cfg.Email.FromName)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db:27017/")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mongodb://db:27017/", cfg.Mongo.URI)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
}
