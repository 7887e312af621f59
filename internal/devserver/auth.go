package devserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/techsolutions/horabank/models"
)

const tokenIssuer = "horabank-devserver"

// Authenticator hashes credentials and issues/verifies the bearer
// tokens the API hands out on login and signup.
type Authenticator struct {
	signKey  string
	duration time.Duration
}

// NewAuthenticator builds an authenticator with the given HMAC sign key
// and token validity window.
func NewAuthenticator(signKey string, duration time.Duration) (*Authenticator, error) {
	if signKey == "" {
		return nil, errors.New("token sign key is required")
	}
	if duration <= 0 {
		return nil, errors.New("token duration must be positive")
	}

	return &Authenticator{signKey: signKey, duration: duration}, nil
}

// HashPassword derives the bcrypt hash stored in the users table.
func (a *Authenticator) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func (a *Authenticator) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken creates a signed HMAC-SHA256 JWT whose subject is the
// user's ID.
func (a *Authenticator) IssueToken(userID string) (models.Token, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(a.duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return models.Token{Token: token, SignedString: signed, UserID: userID}, nil
}

// ParseToken validates the signature, issuer, and expiry of a compact
// JWT and extracts the subject. Any failure maps to [ErrTokenInvalid].
func (a *Authenticator) ParseToken(tokenString string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(a.signKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: claims.Subject}, nil
}
