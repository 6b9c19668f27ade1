// internal/auth/token.go
package auth

import (
	"fmt"
	"time"

	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenManager struct {
	secret       []byte
	expiryPeriod time.Duration
	now          func() time.Time
}

func NewTokenManager(secret string, expiryPeriod time.Duration) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		expiryPeriod: expiryPeriod,
		now:          time.Now,
	}
}

// Claims carry what a request needs to resolve its viewer without a
// database round trip. A subscription change issues a fresh token.
type Claims struct {
	UserID           string           `json:"user_id"`
	Email            string           `json:"email"`
	Role             model.Role       `json:"role"`
	Premium          bool             `json:"premium"`
	PremiumExpiresAt *jwt.NumericDate `json:"premium_exp,omitempty"`
	jwt.RegisteredClaims
}

// UserUUID parses the user id claim.
func (c *Claims) UserUUID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

// PremiumUntil returns the subscription expiry, or nil when open ended.
func (c *Claims) PremiumUntil() *time.Time {
	if c.PremiumExpiresAt == nil {
		return nil
	}
	t := c.PremiumExpiresAt.Time
	return &t
}

func (tm *TokenManager) Generate(user *model.User) (string, error) {
	now := tm.now()
	claims := Claims{
		UserID:  user.ID.String(),
		Email:   user.Email,
		Role:    user.Role,
		Premium: user.IsPremium,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiryPeriod)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	if user.PremiumExpiresAt != nil {
		claims.PremiumExpiresAt = jwt.NewNumericDate(*user.PremiumExpiresAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("invalid token role %q", claims.Role)
	}

	return claims, nil
}
