package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restorePassword() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
}

func TestHashPassword(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		hash, err := HashPassword("secretpassword")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		require.NotEqual(t, "secretpassword", hash)
	})

	t.Run("generate error", func(t *testing.T) {
		t.Cleanup(restorePassword)
		bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
			return nil, errors.New("gen")
		}
		_, err := HashPassword("secretpassword")
		require.Error(t, err)
	})
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("secretpassword")
	require.NoError(t, err)

	require.NoError(t, ComparePassword(hash, "secretpassword"))
	require.Error(t, ComparePassword(hash, "wrongpassword"))
	require.Error(t, ComparePassword("not-a-hash", "secretpassword"))
}
