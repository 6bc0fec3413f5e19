package utils

import (
	"log"
	"os"
	"strconv"
)

var (
	// JWTSecretKey signs every credential token.
	JWTSecretKey string
	// JWTExpirationTime is the token lifetime in seconds.
	JWTExpirationTime int64
)

// InitJWT loads the signing configuration from the environment. Tests
// get deterministic defaults so they never depend on a local .env.
func InitJWT() {
	if os.Getenv("GO_ENV") == "test" {
		if os.Getenv("JWT_SECRET_KEY") == "" {
			os.Setenv("JWT_SECRET_KEY", "test_secret_key")
		}
		if os.Getenv("JWT_EXPIRATION_TIME") == "" {
			os.Setenv("JWT_EXPIRATION_TIME", "3600")
		}
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}

	jwtExpiration := os.Getenv("JWT_EXPIRATION_TIME")
	if jwtExpiration == "" {
		log.Fatal("JWT Expiration Time not set")
	}

	var err error
	JWTExpirationTime, err = strconv.ParseInt(jwtExpiration, 10, 64)
	if err != nil {
		log.Fatal("Error parsing JWT expiration time")
	}
}
