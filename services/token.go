package services

import (
	"errors"
	"fmt"
	"time"

	"feathernote/utils"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "feathernote"

// GenerateToken issues the signed credential token carried by the
// "token" cookie.
func GenerateToken(userID string) (string, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(utils.JWTExpirationTime) * time.Second)

	claims := jwt.MapClaims{
		"user_id": userID,
		"iss":     tokenIssuer,
		"iat":     now.Unix(),
		"exp":     expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}

// ParseToken verifies the signature, expiry and issuer and returns the
// acting user's identifier.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(utils.JWTSecretKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("invalid user ID in token")
	}
	return userID, nil
}

// TokenExpiry returns the exp claim without verifying the signature.
// Used when blacklisting an already-presented token.
func TokenExpiry(tokenString string) time.Time {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Now().Add(24 * time.Hour)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0)
		}
	}
	return time.Now().Add(24 * time.Hour)
}
