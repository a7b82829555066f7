package config

import (
	"errors"
	"os"
)

type Config struct {
	GroqAPIKey       string
	GroqBaseURL      string
	GroqModel        string
	PostmarkAPIKey   string
	PostmarkBaseURL  string
	SenderEmail      string
	TwilioAccountSID string
	TwilioAuthToken  string
	DatabasePath     string
	LogLevel         string
	ServiceName      string
	Environment      string
	ServerPort       string
}

func LoadConfig() (*Config, error) {
	groqAPIKey := os.Getenv("GROQ_API_KEY")
	if groqAPIKey == "" {
		return nil, errors.New("GROQ_API_KEY not found in environment variables")
	}

	groqBaseURL := os.Getenv("GROQ_BASE_URL")
	if groqBaseURL == "" {
		groqBaseURL = "https://api.groq.com/openai/v1"
	}

	groqModel := os.Getenv("GROQ_MODEL")
	if groqModel == "" {
		groqModel = "llama-3.3-70b-versatile"
	}

	postmarkBaseURL := os.Getenv("POSTMARK_BASE_URL")
	if postmarkBaseURL == "" {
		postmarkBaseURL = "https://api.postmarkapp.com"
	}

	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		databasePath = "rooms.db"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "thira-concierge"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8000"
	}

	return &Config{
		GroqAPIKey:       groqAPIKey,
		GroqBaseURL:      groqBaseURL,
		GroqModel:        groqModel,
		PostmarkAPIKey:   os.Getenv("POSTMARK_API_KEY"),
		PostmarkBaseURL:  postmarkBaseURL,
		SenderEmail:      os.Getenv("SENDER_EMAIL"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		DatabasePath:     databasePath,
		LogLevel:         logLevel,
		ServiceName:      serviceName,
		Environment:      environment,
		ServerPort:       serverPort,
	}, nil
}
