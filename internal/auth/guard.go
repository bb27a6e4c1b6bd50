package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingHeader     = errors.New("Authorization header required")
	ErrInvalidAuthFormat = errors.New("Invalid authorization format. Expected: Bearer <token>")
	ErrInvalidToken      = errors.New("Invalid device token")
)

// Guard decides whether a request comes from a provisioned terminal. It is
// a pure decision over the Authorization header: no side effects, no store
// access. A token is accepted if it equals the shared secret, or if it is
// an enrollment-issued JWT signed with that secret.
type Guard struct {
	secret string
}

func NewGuard(secret string) *Guard {
	return &Guard{secret: secret}
}

func (g *Guard) Authorize(header string) error {
	token, err := bearerToken(header)
	if err != nil {
		return err
	}
	if g.matchesSecret(token) {
		return nil
	}
	return g.verifyDeviceToken(token)
}

// AuthorizeShared accepts only the shared secret itself. Enrollment runs
// behind this so a stolen device token cannot mint further credentials.
func (g *Guard) AuthorizeShared(header string) error {
	token, err := bearerToken(header)
	if err != nil {
		return err
	}
	if !g.matchesSecret(token) {
		return ErrInvalidToken
	}
	return nil
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingHeader
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", ErrInvalidAuthFormat
	}
	token := header[len(prefix):]
	if token == "" {
		return "", ErrInvalidAuthFormat
	}
	return token, nil
}

func (g *Guard) matchesSecret(token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(g.secret)) == 1
}

func (g *Guard) verifyDeviceToken(token string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(g.secret), nil
	})
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}
	if sn, _ := claims["device_sn"].(string); sn == "" {
		return ErrInvalidToken
	}
	return nil
}
