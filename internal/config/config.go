package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	PaymentGatewayKey string
	PaymentGatewayURL string
	Currency          string

	KafkaBrokers []string
	AuditTopic   string
	PaymentTopic string
}

// Load reads the environment, preferring a .env file next to the working
// directory or one level up when present.
func Load() (*Config, error) {
	loadDotenv()

	cfg := &Config{
		HTTPPort:          getenv("PORT", "3000"),
		DBHost:            getenv("DB_HOST", "localhost"),
		DBPort:            getenv("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            getenv("DB_NAME", "profast"),
		PaymentGatewayKey: os.Getenv("PAYMENT_GATEWAY_KEY"),
		PaymentGatewayURL: getenv("PAYMENT_GATEWAY_URL", "https://api.stripe.com"),
		Currency:          getenv("PAYMENT_CURRENCY", "usd"),
		KafkaBrokers:      strings.Split(getenv("KAFKA_BROKERS", "localhost:9092"), ","),
		AuditTopic:        getenv("KAFKA_AUDIT_TOPIC", "audit-logs"),
		PaymentTopic:      getenv("KAFKA_PAYMENT_TOPIC", "payment-events"),
	}

	if cfg.PaymentGatewayKey == "" {
		return nil, fmt.Errorf("PAYMENT_GATEWAY_KEY is not set")
	}
	return cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func loadDotenv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	for _, p := range []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
	} {
		if err := godotenv.Load(p); err == nil {
			return
		}
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
