// github.com/kawanwagnner/API-Rest/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kawanwagnner/API-Rest/auth"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET", "segredo-de-teste")
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/banco?parseTime=true")
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL_HOURS", "")
	t.Setenv("BCRYPT_COST", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, []byte("segredo-de-teste"), cfg.JWTSecret)
	assert.Equal(t, auth.DefaultTTL, cfg.TokenTTL)
	assert.Equal(t, auth.DefaultCost, cfg.BcryptCost)
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("SECRET", "")
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/banco")

	_, err := Load()
	assert.ErrorContains(t, err, "SECRET")
}

func TestLoadMissingDSN(t *testing.T) {
	t.Setenv("SECRET", "segredo-de-teste")
	t.Setenv("DB_DSN", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_DSN")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SECRET", "segredo-de-teste")
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/banco")
	t.Setenv("PORT", "8080")
	t.Setenv("TOKEN_TTL_HOURS", "2")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoadInvalidTTL(t *testing.T) {
	t.Setenv("SECRET", "segredo-de-teste")
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/banco")
	t.Setenv("TOKEN_TTL_HOURS", "abc")

	_, err := Load()
	assert.ErrorContains(t, err, "TOKEN_TTL_HOURS")
}
