package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendPasswordResetEmail mails the reset link for the given token. Used both
// by the explicit forgot-password flow and for accounts provisioned during
// booking.
func SendPasswordResetEmail(to, name, token string) error {
	resetURL := fmt.Sprintf("%s/password/reset/%s", os.Getenv("APP_URL"), token)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We received a request to set a password for your account.</p>
		<p><a href="%s">Click here to choose your password</a></p>
		<p>This link expires in one hour. If you did not request it, you can ignore this email.</p>
		<p>Best regards,</p>
		<p>Your Clinic Team</p>
	`, name, resetURL)
	return SendEmail(to, "Password Reset Request", body)
}
