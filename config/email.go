package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// NewMailDialer builds the SMTP dialer for the rescue's Gmail account.
func NewMailDialer() (*gomail.Dialer, error) {
	sender, err := GetEmailSender()
	if err != nil {
		return nil, err
	}

	password := os.Getenv("EMAIL_PASS")
	if password == "" {
		return nil, fmt.Errorf("empty email password")
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}

	port := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		port = v
	}

	return gomail.NewDialer(host, port, sender, password), nil
}

func GetEmailSender() (string, error) {
	emailSender := os.Getenv("EMAIL_USER")
	if emailSender == "" {
		return "", fmt.Errorf("empty email sender")
	}
	return emailSender, nil
}

// GetPhotographyTeamEmail is the address the background sweep notifies.
func GetPhotographyTeamEmail() string {
	v := os.Getenv("PHOTOGRAPHY_TEAM_EMAIL")
	if v == "" {
		return "angelsphotographyemail@gmail.com"
	}
	return v
}
