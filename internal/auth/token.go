package auth

import (
	"fmt"
	"time"

	"sisgad/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Manager signs and validates the bearer tokens the dashboard holds.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) Manager {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return Manager{secret: []byte(secret), ttl: ttl}
}

// Issue creates an HS256 token carrying the user id.
func (m Manager) Issue(userID int64, usuario string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"usuario": usuario,
		"exp":     time.Now().Add(m.ttl).Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("firmar token: %w", err)
	}
	return signed, nil
}

// Parse validates signature and expiry and returns the user id. Any failure
// is an UnauthorizedError; the caller maps it to 401.
func (m Manager) Parse(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, domain.UnauthorizedError{Msg: "token no válido o expirado", Err: err}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.UnauthorizedError{Msg: "token no válido"}
	}
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, domain.UnauthorizedError{Msg: "token sin identidad"}
	}
	return int64(id), nil
}
