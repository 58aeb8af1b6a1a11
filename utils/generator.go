package utils

import (
	"crypto/rand"
	"fmt"
)

// GenerateRandomPassword returns a throwaway password for users provisioned
// implicitly during booking. They pick a real one through the reset mail.
func GenerateRandomPassword() string {
	b := make([]byte, 10)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}
