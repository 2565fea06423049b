// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"contacts/config"
	"contacts/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenVerifier interface using HMAC-signed JWTs.
type jwtService struct {
	accessSecret []byte
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (*jwtService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: []byte(cfg.SecretKey.Access)}, nil
}

// NewTokenVerifier exposes the jwt service as the domain TokenVerifier.
func NewTokenVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	return NewJWTService(cfg)
}

// Verify checks the token and reads the caller from its claims.
// The username comes from "user_name", falling back to "sub"; roles from "authorities" or "roles".
func (s *jwtService) Verify(tokenString string) (*service.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, errors.Wrap(ErrInvalidToken, "token rejected")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Wrap(ErrInvalidToken, "unexpected claims type")
	}

	username, _ := claims["user_name"].(string)
	if username == "" {
		username, _ = claims["sub"].(string)
	}
	if username == "" {
		return nil, errors.Wrap(ErrInvalidToken, "username missing from token")
	}

	return &service.Principal{
		Username: username,
		Roles:    append(stringList(claims["authorities"]), stringList(claims["roles"])...),
	}, nil
}

// Issue signs an access token for the given caller. Used by local tooling and tests.
func (s *jwtService) Issue(username string, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":         username,
		"user_name":   username,
		"authorities": roles,
		"iat":         now.Unix(),
		"exp":         now.Add(ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}

func stringList(claim any) []string {
	values, _ := claim.([]any)
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}

	return out
}
