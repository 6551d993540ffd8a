package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordChecker_Plaintext(t *testing.T) {
	checker := NewPasswordChecker("secret", nil)

	assert.True(t, checker.Verify("secret"))
	assert.False(t, checker.Verify("Secret"))
	assert.False(t, checker.Verify("secret "))
	assert.False(t, checker.Verify(""))
}

func TestPasswordChecker_HashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	checker := NewPasswordChecker("plain-secret", hash)

	assert.True(t, checker.Verify("hashed-secret"))
	assert.False(t, checker.Verify("plain-secret"))
	assert.False(t, checker.Verify(""))
}

func TestPasswordCheckerFromEnv_Default(t *testing.T) {
	t.Setenv("ANALYTICS_PASSWORD", "")
	t.Setenv("ANALYTICS_PASSWORD_HASH", "")

	checker := PasswordCheckerFromEnv()
	assert.True(t, checker.Verify(DefaultAnalyticsPassword))
	assert.False(t, checker.Verify("wrong"))
}

func TestPasswordCheckerFromEnv_Override(t *testing.T) {
	t.Setenv("ANALYTICS_PASSWORD", "croissant")
	t.Setenv("ANALYTICS_PASSWORD_HASH", "")

	checker := PasswordCheckerFromEnv()
	assert.True(t, checker.Verify("croissant"))
	assert.False(t, checker.Verify(DefaultAnalyticsPassword))
}
