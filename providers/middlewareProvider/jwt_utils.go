package middlewareprovider

import (
	"fmt"
	"os"
	"time"

	"assettag/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var jwtSecretKey = []byte(os.Getenv("SECRET_KEY"))

const tokenLifetime = 24 * time.Hour

// GenerateJWT issues the bearer credential embedding the caller identity.
func GenerateJWT(userID, username string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"role":     string(role),
		"exp":      time.Now().Add(tokenLifetime).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecretKey)
}

// ParseJWT validates a token and extracts the caller identity.
func ParseJWT(tokenStr string) (models.AuthUser, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return jwtSecretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return models.AuthUser{}, fmt.Errorf("invalid or expired token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.AuthUser{}, errors.New("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return models.AuthUser{}, errors.New("invalid 'sub' claim")
	}
	username, ok := claims["username"].(string)
	if !ok {
		return models.AuthUser{}, errors.New("invalid 'username' claim")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return models.AuthUser{}, errors.New("invalid 'role' claim")
	}

	return models.AuthUser{ID: sub, Username: username, Role: models.Role(role)}, nil
}
