// Package auth issues and validates the site-scoped JWTs that protect admin
// routes. A token belongs to exactly one site; there are no user accounts.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"push-server/internal/apierrors"
	"push-server/internal/config"
	"push-server/internal/observability"
)

var (
	ErrExpiredToken = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// SiteClaims carries the authenticated site alongside the registered claims.
type SiteClaims struct {
	SiteID string `json:"site_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	logger *observability.Logger
}

func NewService(cfg config.AuthConfig, logger *observability.Logger) *Service {
	return &Service{
		secret: []byte(cfg.JWTSecret),
		logger: logger,
	}
}

// IssueToken mints a site-scoped token. Handed out once at site registration.
func (s *Service) IssueToken(siteID uuid.UUID) (string, error) {
	now := time.Now()
	claims := SiteClaims{
		SiteID: siteID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   siteID.String(),
			Issuer:    "push-server",
			Audience:  jwt.ClaimStrings{"push-server"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(365 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *Service) ValidateToken(tokenString string) (SiteClaims, error) {
	var claims SiteClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return SiteClaims{}, ErrExpiredToken
		}
		return SiteClaims{}, ErrInvalidToken
	}
	if !token.Valid || claims.SiteID == "" {
		return SiteClaims{}, ErrInvalidToken
	}
	return claims, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// authenticated site ID in the gin context for handlers.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			apierrors.Unauthorized(c, "Missing bearer token")
			c.Abort()
			return
		}

		claims, err := s.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, ErrExpiredToken) {
				apierrors.Unauthorized(c, "Token expired")
			} else {
				apierrors.Unauthorized(c, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set("site_id", claims.SiteID)
		c.Next()
	}
}
