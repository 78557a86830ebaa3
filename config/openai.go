package config

import (
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

func GetOpenAIAPIKey() (string, error) {
	key := os.Getenv("OPENAI")
	if key == "" {
		return "", fmt.Errorf("empty openai api key")
	}
	return key, nil
}

func GetOpenAIModel() string {
	v := os.Getenv("OPENAI_MODEL")
	if v == "" {
		return openai.GPT4
	}
	return v
}

func NewOpenAIClient() (*openai.Client, error) {
	key, err := GetOpenAIAPIKey()
	if err != nil {
		return nil, err
	}
	return openai.NewClient(key), nil
}
