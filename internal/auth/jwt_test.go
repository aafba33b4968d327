package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m, err := NewManager("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)

	token, err := m.Generate("507f1f77bcf86cd799439011", RoleEditor)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	require.Equal(t, string(RoleEditor), claims.Role)
}

func TestVerifyExpired(t *testing.T) {
	m, err := NewManager("0123456789abcdef0123456789abcdef", time.Nanosecond)
	require.NoError(t, err)

	token, err := m.Generate("507f1f77bcf86cd799439011", RoleAdmin)
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer, err := NewManager("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)
	verifier, err := NewManager("fedcba9876543210fedcba9876543210", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Generate("507f1f77bcf86cd799439011", RoleViewer)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	m, err := NewManager("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)

	_, err = m.Verify("not-a-token")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewManagerRequiresSecret(t *testing.T) {
	_, err := NewManager("", time.Hour)
	require.Error(t, err)
}
