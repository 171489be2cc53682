package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read once at startup from the environment (and .env via godotenv/autoload).
type Config struct {
	Port               int
	CORSAllowedOrigins []string

	OpenAI OpenAI
	Menu   Menu
	Store  SessionStore
	AWS    AWS
	Tables Tables
	MP     MercadoPago
}

type OpenAI struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type Menu struct {
	// Path is empty for the embedded menu.
	Path string
}

type SessionStore struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// AWS holds the DynamoDB connection settings. Local DynamoDB ignores the credentials but the
// SDK still requires them.
type AWS struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type Tables struct {
	Orders   string
	Payments string
}

type MercadoPago struct {
	AccessToken string
	Mock        bool

	// TestPayerEmail fills payer.email for sandbox (TEST-) tokens when the client sends no payer.
	TestPayerEmail string
}

func Load() Config {
	cfg := Config{
		Port:               getenvInt("PORT", 8080),
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
		OpenAI: OpenAI{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getenvDefault("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			Timeout: getenvDuration("LLM_TIMEOUT", 15*time.Second),
		},
		Menu: Menu{Path: os.Getenv("MENU_PATH")},
		Store: SessionStore{
			TTL:           getenvDuration("SESSION_TTL", 2*time.Hour),
			SweepInterval: getenvDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		},
		AWS: AWS{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Tables: Tables{
			Orders:   getenvDefault("ORDERS_TABLE", "orders"),
			Payments: getenvDefault("PAYMENTS_TABLE", "order_payments"),
		},
		MP: MercadoPago{
			AccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:        getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),

			TestPayerEmail: os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"),
		},
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
