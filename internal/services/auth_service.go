package services

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	scipress_errors "scipress-events/pkg/errors"
)

// AccessClaims is the JWT payload issued by the platform's identity
// service. Only the subject is consumed here.
type AccessClaims struct {
	jwt.RegisteredClaims
}

// AuthService validates end-user access tokens and service API keys.
// API keys arrive from trusted backend services on the event ingest
// endpoint; only bcrypt hashes of them are held in memory.
type AuthService struct {
	jwtSecret    []byte
	apiKeyHashes []string
}

func NewAuthService(jwtSecret string, apiKeyHashes []string) *AuthService {
	return &AuthService{jwtSecret: []byte(jwtSecret), apiKeyHashes: apiKeyHashes}
}

// ParseAccessToken verifies an HS256 token and returns the user id it
// identifies.
func (s *AuthService) ParseAccessToken(tokenString string) (uuid.UUID, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, scipress_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, scipress_errors.ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, scipress_errors.ErrUnauthorized
	}
	return userID, nil
}

// HashAPIKey produces the bcrypt hash to configure for a new key.
func (s *AuthService) HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckAPIKey reports whether the presented key matches any configured
// hash.
func (s *AuthService) CheckAPIKey(key string) bool {
	for _, hash := range s.apiKeyHashes {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil {
			return true
		}
	}
	return false
}
