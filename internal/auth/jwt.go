package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/snackpool/backend/internal/models"
)

// TokenExpiry is the duration for which issued tokens are valid.
// Families log in once per selection round, so tokens are long-lived.
const TokenExpiry = 7 * 24 * time.Hour

var (
	ErrInvalidToken = errors.New("the authentication token is invalid or has expired")
)

// Claims are the JWT claims issued on login. They carry everything the
// authorization middleware needs so that no database read is required
// per request.
type Claims struct {
	FamilyID uint64 `json:"familyId"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Admin reports whether the token belongs to the admin account.
func (c Claims) Admin() bool {
	return c.Role == models.RoleAdmin
}

// Service issues and validates bearer tokens.
type Service struct {
	secret []byte
}

// NewService creates a token service with the given signing secret.
func NewService(secret string) *Service {
	return &Service{
		secret: []byte(secret),
	}
}

// NewServiceFromEnv creates a token service with the secret from the
// TOKEN_SECRET environment variable.
func NewServiceFromEnv() *Service {
	secret, ok := os.LookupEnv("TOKEN_SECRET")
	if !ok || secret == "" {
		// A random secret keeps unset deployments safe. It invalidates
		// all tokens on restart, set TOKEN_SECRET to avoid that.
		log.Warn().Msg("TOKEN_SECRET is not set, using a random secret. Tokens will not survive a restart")
		secret = uuid.NewString()
	}

	return NewService(secret)
}

// GenerateToken generates a signed token for the family.
func (s *Service) GenerateToken(family models.Family) (string, error) {
	claims := &Claims{
		FamilyID: family.ID,
		Name:     family.Name,
		Role:     family.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
