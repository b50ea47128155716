package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken トークンが不正です
var ErrInvalidToken = errors.New("invalid token")

// Signer HS256でアクセストークンを発行・検証します
type Signer struct {
	key []byte
	ttl time.Duration
}

// NewSigner Signerを生成します
func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty jwt secret")
	}
	return &Signer{key: []byte(secret), ttl: ttl}, nil
}

// Sign subjectをsubクレームに持つトークンを発行します
func (s *Signer) Sign(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Verify トークンを検証し、subクレームを返します
func (s *Signer) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || len(sub) == 0 {
		return "", ErrInvalidToken
	}
	return sub, nil
}
