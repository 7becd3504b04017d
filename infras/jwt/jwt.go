package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"neodrive/config"
	"neodrive/shared/constant"
	"neodrive/shared/timezone"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"

	bearerPrefix = "Bearer "
)

var (
	ErrMissingSecret = errors.New("signing secret is not configured")
	ErrReservedClaim = errors.New("payload already has an expiry claim")
	ErrInvalidClaim  = errors.New("invalid token claim")
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
)

// JWT signs caller payloads into HS256 tokens with a fixed validity and verifies them.
type JWT interface {
	Issue(payload map[string]any) (string, error)
	Validate(tokenString string) (jwt.MapClaims, error)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// Issue signs payload as the token claims. iat defaults to now and exp is always iat plus the token validity.
func (s *Service) Issue(payload map[string]any) (string, error) {
	secret := s.config.JWT.AccessSecret
	if secret == "" {
		return "", ErrMissingSecret
	}

	if _, ok := payload[ClaimExpiresAt]; ok {
		return "", ErrReservedClaim
	}

	claims := make(jwt.MapClaims, len(payload)+2)
	for key, value := range payload {
		claims[key] = value
	}

	issuedAt := timezone.Now().Unix()
	if raw, ok := claims[ClaimIssuedAt]; ok {
		iat, ok := raw.(float64)
		if !ok {
			return "", fmt.Errorf("%w: iat must be a number", ErrInvalidClaim)
		}

		issuedAt = int64(iat)
	}

	claims[ClaimIssuedAt] = issuedAt
	claims[ClaimExpiresAt] = issuedAt + int64(constant.TokenValidity/time.Second)

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Validate parses tokenString and returns its claims when the signature and expiry hold.
func (s *Service) Validate(tokenString string) (jwt.MapClaims, error) {
	secret := s.config.JWT.AccessSecret
	if secret == "" {
		return nil, ErrMissingSecret
	}

	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the bearer token from an Authorization header value.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || token == "" {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return token, nil
}
