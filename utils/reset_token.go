package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brightsmile/booking-app/redis"
)

const resetTokenTTL = time.Hour

func resetKey(token string) string {
	return "password-reset:" + token
}

// CreateResetToken stores a fresh single-use password-reset token for the
// user's email, expiring after an hour.
func CreateResetToken(email string) (string, error) {
	if redis.Client == nil {
		return "", fmt.Errorf("redis client not initialized")
	}
	token := uuid.NewString()
	if err := redis.Client.Set(redis.Ctx, resetKey(token), email, resetTokenTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// ConsumeResetToken resolves a token to the email it was issued for and
// invalidates it.
func ConsumeResetToken(token string) (string, error) {
	if redis.Client == nil {
		return "", fmt.Errorf("redis client not initialized")
	}
	email, err := redis.Client.Get(redis.Ctx, resetKey(token)).Result()
	if err != nil {
		return "", fmt.Errorf("invalid or expired token")
	}
	redis.Client.Del(redis.Ctx, resetKey(token))
	return email, nil
}
