package config

import (
	"fmt"
	"os"
)

func GetRetellAPIKey() (string, error) {
	key := os.Getenv("RETELL")
	if key == "" {
		return "", fmt.Errorf("empty retell api key")
	}
	return key, nil
}

func GetRetellBaseURL() string {
	v := os.Getenv("RETELL_BASE_URL")
	if v == "" {
		return "https://api.retellai.com"
	}
	return v
}

// GetFromPhoneNumber is the rescue's outbound caller id.
func GetFromPhoneNumber() string {
	v := os.Getenv("FROM_PHONE_NUMBER")
	if v == "" {
		return "+18446060918"
	}
	return v
}
