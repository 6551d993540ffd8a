package utils

import (
	"crypto/subtle"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// DefaultAnalyticsPassword is the fallback dashboard secret when neither
// ANALYTICS_PASSWORD nor ANALYTICS_PASSWORD_HASH is set. It exists so the
// dashboard works out of the box in development; any real deployment must
// override it.
const DefaultAnalyticsPassword = "admin123"

// PasswordChecker verifies the dashboard password against the configured
// secret. When a bcrypt hash is configured it takes precedence over the
// plaintext secret.
type PasswordChecker struct {
	plaintext string
	hash      []byte
}

func NewPasswordChecker(plaintext string, hash []byte) *PasswordChecker {
	return &PasswordChecker{plaintext: plaintext, hash: hash}
}

// PasswordCheckerFromEnv builds the checker from ANALYTICS_PASSWORD and
// ANALYTICS_PASSWORD_HASH, warning loudly when only the insecure default is
// available.
func PasswordCheckerFromEnv() *PasswordChecker {
	hash := []byte(os.Getenv("ANALYTICS_PASSWORD_HASH"))
	password := os.Getenv("ANALYTICS_PASSWORD")
	if password == "" && len(hash) == 0 {
		log.Println("WARNING: ANALYTICS_PASSWORD not set. Using insecure default password, override it in any real deployment.")
		password = DefaultAnalyticsPassword
	}
	return NewPasswordChecker(password, hash)
}

// Verify reports whether candidate matches the configured secret. An empty
// candidate always fails.
func (p *PasswordChecker) Verify(candidate string) bool {
	if candidate == "" {
		return false
	}
	if len(p.hash) > 0 {
		return bcrypt.CompareHashAndPassword(p.hash, []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(p.plaintext), []byte(candidate)) == 1
}
