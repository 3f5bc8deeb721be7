package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/legalge/platform/internal/models"
)

var jwtKey []byte

func init() {
	if err := godotenv.Load(); err != nil {
		log.Default().Println("No .env file found")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "test_secret_key_minimum_32_characters_long_for_testing_only"
	}

	jwtKey = []byte(secret)
}

func ValidateJWTSecret() error {
	secret := os.Getenv("JWT_SECRET")

	if secret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if len(secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long (current: %d)", len(secret))
	}

	if secret == "test_secret_key_minimum_32_characters_long_for_testing_only" {
		return fmt.Errorf("cannot use default test secret in production")
	}

	return nil
}

// TokenClaims is the actor context carried by an access token. Company
// linkage travels with the session so request handling can prefer it over a
// database lookup.
type TokenClaims struct {
	UserID      uint
	Role        models.UserRole
	CompanyID   *uint
	CompanySlug string
}

func GenerateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.Itoa(int(user.ID)),
		"role": string(user.Role),
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
	}
	if user.CompanyID != nil {
		claims["company_id"] = float64(*user.CompanyID)
	}
	if user.CompanySlug != "" {
		claims["company_slug"] = user.CompanySlug
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ParseJWT(tokenStr string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.Atoi(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim")
	}

	out := &TokenClaims{UserID: uint(id)}

	if role, ok := claims["role"].(string); ok {
		out.Role = models.UserRole(role)
	}
	if cid, ok := claims["company_id"].(float64); ok {
		v := uint(cid)
		out.CompanyID = &v
	}
	if slug, ok := claims["company_slug"].(string); ok {
		out.CompanySlug = slug
	}

	return out, nil
}
