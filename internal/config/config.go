package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTableKV string
	S3BucketName  string

	EmailAPIURL  string
	EmailAPIKey  string
	EmailFrom    string
	EmailTimeout time.Duration
	EmailSpacing time.Duration // minimum gap between consecutive provider calls

	AdminNotifyEmail  string
	AdminPassword     string
	AdminPasswordHash string // bcrypt; takes precedence over AdminPassword when set

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "eu-central-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTableKV: getEnv("DYNAMO_TABLE_KV", "dive_demo_tour_kv"),
		S3BucketName:  getEnv("S3_BUCKET_NAME", "dive-demo-tour-uploads"),

		EmailAPIURL:  getEnv("EMAIL_API_URL", "https://api.resend.com/emails"),
		EmailAPIKey:  getEnv("EMAIL_API_KEY", ""),
		EmailFrom:    getEnv("EMAIL_FROM", "Dive Demo Tour <noreply@dive-demo-tour.example>"),
		EmailTimeout: getEnvDuration("EMAIL_TIMEOUT", 10*time.Second),
		EmailSpacing: getEnvDuration("EMAIL_SEND_SPACING", 600*time.Millisecond),

		AdminNotifyEmail:  getEnv("ADMIN_NOTIFY_EMAIL", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
