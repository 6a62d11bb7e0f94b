package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the bearer token claims issued by the authentication provider.
// The user id is read from user_id, falling back to the standard subject.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role"`
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// Caller converts the claims into the authenticated caller
func (c *Claims) Caller() (models.Caller, error) {
	raw := c.UserID
	if raw == "" {
		raw = c.Subject
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return models.Caller{}, fmt.Errorf("%w: user id is not a valid UUID", ErrInvalidToken)
	}

	role := models.UserRole(c.Role)
	if role != models.RoleDriver {
		role = models.RoleRider
	}

	return models.Caller{ID: id, Role: role, Name: c.Name, Phone: c.Phone}, nil
}

// GenerateToken signs a token for the caller. Used by local tooling and tests;
// production tokens come from the authentication provider.
func GenerateToken(caller models.Caller, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := Claims{
		UserID: caller.ID.String(),
		Role:   string(caller.Role),
		Name:   caller.Name,
		Phone:  caller.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.ID.String(),
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt.Unix(), nil
}

// ValidateToken verifies the signature, expiry and issuer and returns the claims
func ValidateToken(tokenString string, cfg models.JWTConfig) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrInvalidToken)
	}

	return claims, nil
}

// ExtractToken returns the bearer token of r. Browsers cannot set headers on
// WebSocket upgrades, so the access_token query parameter is accepted as well.
func ExtractToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return r.URL.Query().Get("access_token")
}
