package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Screening ScreeningConfig
	Sheets    SheetsConfig
	Telephony TelephonyConfig
	AI        AIConfig
	Notify    NotifyConfig
	Server    ServerConfig
}

// ScreeningConfig holds call routing settings
type ScreeningConfig struct {
	OwnerNumber      string
	BusinessName     string
	PublicBaseURL    string
	Voice            string
	RefreshInterval  time.Duration // 0 means refetch the lists on every lookup
	NormalizeNumbers bool
}

// SheetsConfig holds the spreadsheet used for lists and call logs.
// An empty SpreadsheetID disables the integration.
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsJSON string
}

// TelephonyConfig holds the voice platform credentials.
// An empty AccountSID disables outbound SMS and signature validation.
type TelephonyConfig struct {
	AccountSID         string
	AuthToken          string
	FromNumber         string
	ValidateSignatures bool
}

// AIConfig holds the caller-intent classifier settings.
// Provider selects which API key is used; an empty key disables classification.
type AIConfig struct {
	Provider       string
	OpenAIAPIKey   string
	GoogleAIAPIKey string
}

// NotifyConfig holds owner notification settings.
// An empty ResendAPIKey disables the email channel.
type NotifyConfig struct {
	ResendAPIKey string
	EmailSender  string
	OwnerEmail   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Screening configuration
	var err error
	if cfg.Screening.OwnerNumber, err = requireEnv("OWNER_PHONE_NUMBER"); err != nil {
		return nil, err
	}
	cfg.Screening.BusinessName = getEnvWithDefault("BUSINESS_NAME", "our office")
	cfg.Screening.PublicBaseURL = os.Getenv("PUBLIC_BASE_URL")
	cfg.Screening.Voice = getEnvWithDefault("SCREEN_VOICE", "Polly.Joanna")

	refreshInterval := getEnvWithDefault("SCREEN_REFRESH_INTERVAL", "60s")
	cfg.Screening.RefreshInterval, err = time.ParseDuration(refreshInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SCREEN_REFRESH_INTERVAL: %w", err)
	}

	normalize := getEnvWithDefault("SCREEN_NORMALIZE_NUMBERS", "false")
	cfg.Screening.NormalizeNumbers, err = strconv.ParseBool(normalize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SCREEN_NORMALIZE_NUMBERS: %w", err)
	}

	// Sheets configuration (optional integration)
	cfg.Sheets.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_ID")
	cfg.Sheets.CredentialsJSON = os.Getenv("GOOGLE_CREDS_JSON")
	if cfg.Sheets.SpreadsheetID != "" && cfg.Sheets.CredentialsJSON == "" {
		return nil, fmt.Errorf("GOOGLE_CREDS_JSON is not set: %w", ErrEmptyEnvironmentVariable)
	}

	// Telephony configuration (optional integration)
	cfg.Telephony.AccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	cfg.Telephony.AuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	cfg.Telephony.FromNumber = os.Getenv("TWILIO_PHONE_NUMBER")
	if cfg.Telephony.AccountSID != "" && cfg.Telephony.AuthToken == "" {
		return nil, fmt.Errorf("TWILIO_AUTH_TOKEN is not set: %w", ErrEmptyEnvironmentVariable)
	}

	validateSignatures := getEnvWithDefault("VALIDATE_WEBHOOK_SIGNATURES", "false")
	cfg.Telephony.ValidateSignatures, err = strconv.ParseBool(validateSignatures)
	if err != nil {
		return nil, fmt.Errorf("failed to parse VALIDATE_WEBHOOK_SIGNATURES: %w", err)
	}
	if cfg.Telephony.ValidateSignatures && cfg.Telephony.AuthToken == "" {
		return nil, fmt.Errorf("TWILIO_AUTH_TOKEN is not set: %w", ErrEmptyEnvironmentVariable)
	}

	// AI configuration (optional integration)
	cfg.AI.Provider = getEnvWithDefault("AI_PROVIDER", "openai")
	if cfg.AI.Provider != "openai" && cfg.AI.Provider != "gemini" {
		return nil, fmt.Errorf("AI_PROVIDER must be openai or gemini, got %q", cfg.AI.Provider)
	}
	cfg.AI.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AI.GoogleAIAPIKey = os.Getenv("GOOGLE_AI_API_KEY")

	// Notification configuration (optional integration)
	cfg.Notify.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Notify.EmailSender = os.Getenv("DEFAULT_EMAIL_SENDER_ADDRESS")
	cfg.Notify.OwnerEmail = os.Getenv("OWNER_EMAIL_ADDRESS")
	if cfg.Notify.ResendAPIKey != "" && cfg.Notify.EmailSender == "" {
		return nil, fmt.Errorf("DEFAULT_EMAIL_SENDER_ADDRESS is not set: %w", ErrEmptyEnvironmentVariable)
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
