package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/brightsmile/booking-app/models"
)

// JWTSecret returns the signing key shared by token issuing and the auth
// middleware.
func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return secret
}

// IssueAccessToken signs a 24h HS256 token carrying the user's identity.
// Booking hands this to the client so a freshly provisioned user can act as
// that identity immediately.
func IssueAccessToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(JWTSecret()))
}
