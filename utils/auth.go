package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword creates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a password against a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func resetSecret() []byte {
	return []byte(os.Getenv("RESET_TOKEN_SECRET"))
}

// GenerateResetToken creates a signed, expiring password-reset token for
// the given email. The token is only honored for one hour.
func GenerateResetToken(email string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["email"] = email
	claims["purpose"] = "password-reset"
	claims["exp"] = time.Now().Add(time.Hour).Unix()

	return token.SignedString(resetSecret())
}

// ValidateResetToken validates a password-reset token and returns the email
// it was issued for.
func ValidateResetToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return resetSecret(), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if purpose, _ := claims["purpose"].(string); purpose != "password-reset" {
		return "", errors.New("invalid token purpose")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("invalid email in token")
	}
	return email, nil
}
