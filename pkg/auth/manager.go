package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/nzwalks/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySigningKey = errors.New("empty signing key")
	ErrEmptyTokenTTL   = errors.New("empty access token ttl")
)

// Claims carries the caller identity and the roles granted to it.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates role-bearing access tokens.
type TokenManager interface {
	NewJWT(subject string, roles []string) (string, time.Duration, error)
	Parse(accessToken string) (*Claims, error)
}

type Manager struct {
	signingKey     []byte
	issuer         string
	accessTokenTTL time.Duration
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, ErrEmptySigningKey
	}

	if cfg.AccessTokenTTL == 0 {
		return nil, ErrEmptyTokenTTL
	}

	return &Manager{
		signingKey:     []byte(cfg.SigningKey),
		issuer:         cfg.Issuer,
		accessTokenTTL: cfg.AccessTokenTTL,
	}, nil
}

func (m *Manager) NewJWT(subject string, roles []string) (string, time.Duration, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTokenTTL)),
		},
	})

	accessToken, err := token.SignedString(m.signingKey)
	if err != nil {
		return "", 0, fmt.Errorf("sign jwt failed: %w", err)
	}

	return accessToken, m.accessTokenTTL, nil
}

func (m *Manager) Parse(accessToken string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return m.signingKey, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return &claims, nil
}
