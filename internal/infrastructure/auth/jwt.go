package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ispdesk/internal/shared/biztime"
)

const issuer = "ispdesk"

// Claims binds a signed token to one gate session.
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService signs HS256 session tokens. A zero ttl issues tokens without
// an expiry, which keeps the gate connected until an explicit disconnect.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token for sessionID and reports its lifetime in seconds
// (0 when the token does not expire).
func (s *JWTService) Issue(sessionID string) (string, int64, error) {
	if sessionID == "" {
		return "", 0, errors.New("session ID cannot be empty")
	}

	now := biztime.NowUTC()
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, int64(s.ttl / time.Second), nil
}

// Verify checks the signature and expiry and returns the session ID.
func (s *JWTService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.SessionID != "" {
		return claims.SessionID, nil
	}

	return "", fmt.Errorf("invalid token")
}
