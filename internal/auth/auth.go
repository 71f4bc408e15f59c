// Package auth carries the authenticated principal and the token and
// password primitives behind it.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"mealmate/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Principal is the account a request acts for. It is passed explicitly into
// every service call that needs an identity.
type Principal struct {
	AccountID primitive.ObjectID
	Email     string
	Role      string
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// IssueAccessToken signs an HS256 token carrying the account id and role.
func IssueAccessToken(account models.Account, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   account.ID.Hex(),
		"role":  account.Role,
		"email": account.Email,
		"exp":   time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken verifies raw and returns the principal it names.
func ParseAccessToken(raw, secret string) (Principal, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	accountID, err := primitive.ObjectIDFromHex(strings.TrimSpace(sub))
	if err != nil {
		return Principal{}, ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	if role == "" {
		role = models.RoleUser
	}
	email, _ := claims["email"].(string)

	return Principal{AccountID: accountID, Email: email, Role: role}, nil
}

// HashPassword enforces the account password rule (at least eight
// characters with a letter and a digit) before hashing.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", errors.New("password must be at least 8 characters")
	}
	if !strings.ContainsAny(password, "0123456789") || !containsLetter(password) {
		return "", errors.New("password must contain at least one letter and one number")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func containsLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
