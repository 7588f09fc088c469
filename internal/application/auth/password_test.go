package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordena-api/internal/application/auth"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, auth.VerifyPassword("hunter2", hash))
	assert.False(t, auth.VerifyPassword("hunter3", hash))
}

// bcrypt sala cada hash: el mismo password produce hashes distintos.
func TestHashPassword_SaltAleatorio(t *testing.T) {
	h1, err := auth.HashPassword("mismo-password")
	require.NoError(t, err)
	h2, err := auth.HashPassword("mismo-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, auth.VerifyPassword("mismo-password", h1))
	assert.True(t, auth.VerifyPassword("mismo-password", h2))
}

func TestPrepareWrite_HasheaExactamenteUnaVez(t *testing.T) {
	u := &entity.User{}
	require.NoError(t, auth.PrepareWrite(u, "secreto"))

	require.NotEmpty(t, u.PasswordHash)
	assert.True(t, strings.HasPrefix(u.PasswordHash, "$2"), "debe ser un hash bcrypt, no el password plano")
	assert.True(t, auth.VerifyPassword("secreto", u.PasswordHash))

	// Segundo PrepareWrite sobre el hash existente: no re-hashea si no hay
	// credencial nueva en el payload.
	antes := u.PasswordHash
	require.NoError(t, auth.PrepareWrite(u, ""))
	assert.Equal(t, antes, u.PasswordHash)
}

func TestPrepareWrite_CredencialNuevaReemplazaHash(t *testing.T) {
	u := &entity.User{}
	require.NoError(t, auth.PrepareWrite(u, "viejo"))
	antes := u.PasswordHash

	require.NoError(t, auth.PrepareWrite(u, "nuevo"))
	assert.NotEqual(t, antes, u.PasswordHash)
	assert.True(t, auth.VerifyPassword("nuevo", u.PasswordHash))
	assert.False(t, auth.VerifyPassword("viejo", u.PasswordHash))
}
