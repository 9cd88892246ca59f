package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/learnify-backend/internal/platform/apierr"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

const DefaultAccessTTL = 30 * time.Minute

// TokenClaims is the identity carried by a verified access token.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

type TokenService interface {
	Issue(subject, role string) (string, error)
	Verify(token string) (*TokenClaims, error)
	AccessTTL() time.Duration
}

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type tokenService struct {
	log       *logger.Logger
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

func NewTokenService(log *logger.Logger, secret string, accessTTL time.Duration) TokenService {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	return &tokenService{
		log:       log.With("service", "TokenService"),
		secret:    []byte(secret),
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

func (ts *tokenService) AccessTTL() time.Duration { return ts.accessTTL }

func (ts *tokenService) Issue(subject, role string) (string, error) {
	now := ts.now()
	claims := accessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

func (ts *tokenService) Verify(tokenString string) (*TokenClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, apierr.Unauthorized("missing_token", "Not authenticated")
	}

	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return ts.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ts.now),
	)
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apierr.Unauthorized("token_expired", "Token has expired")
		}
		return nil, apierr.Unauthorized("invalid_token", "Could not validate credentials")
	}
	if claims.Subject == "" {
		return nil, apierr.Unauthorized("invalid_token", "Could not validate credentials")
	}

	out := &TokenClaims{Subject: claims.Subject, Role: claims.Role}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
