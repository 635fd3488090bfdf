// github.com/kawanwagnner/API-Rest/auth/password_test.go
package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("senha-secreta", DefaultCost)
	require.NoError(t, err)

	assert.NotEqual(t, "senha-secreta", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.True(t, CheckPasswordHash("senha-secreta", hash))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	a, err := HashPassword("mesma-senha", DefaultCost)
	require.NoError(t, err)
	b, err := HashPassword("mesma-senha", DefaultCost)
	require.NoError(t, err)

	// Sal aleatório: dois hashes da mesma senha nunca coincidem.
	assert.NotEqual(t, a, b)
	assert.True(t, CheckPasswordHash("mesma-senha", a))
	assert.True(t, CheckPasswordHash("mesma-senha", b))
}

func TestCheckPasswordHashWrongPassword(t *testing.T) {
	hash, err := HashPassword("senha-certa", DefaultCost)
	require.NoError(t, err)

	assert.False(t, CheckPasswordHash("senha-errada", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPasswordCostOutOfRangeFallsBack(t *testing.T) {
	hash, err := HashPassword("qualquer", 99)
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("qualquer", hash))
}
