package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carries the identity of an authenticated account. City drives the
// points-of-interest authorization checks.
type Claims struct {
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	City       string `json:"city,omitempty"`
	jwt.RegisteredClaims
}

type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Lifetime time.Duration
}

// TokenService signs and validates HS256 tokens bound to one issuer and audience.
type TokenService struct {
	key      []byte
	issuer   string
	audience string
	lifetime time.Duration
	now      func() time.Time
	leeway   time.Duration
}

func NewTokenService(cfg JWTConfig) (*TokenService, error) {
	if len(cfg.Secret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}
	return &TokenService{
		key:      []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		lifetime: cfg.Lifetime,
		now:      time.Now,
		leeway:   time.Minute,
	}, nil
}

// TokenSubject is the account data embedded into an issued token.
type TokenSubject struct {
	AccountID  int
	GivenName  string
	FamilyName string
	City       string
}

func (s *TokenService) CreateToken(sub TokenSubject) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.lifetime)
	claims := &Claims{
		GivenName:  sub.GivenName,
		FamilyName: sub.FamilyName,
		City:       sub.City,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(sub.AccountID),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
