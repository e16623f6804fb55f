package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret       string
	AppBaseURL      string
	PublicVerifyURL string

	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	SMTPSenderEmail string
	SMTPSenderName  string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running on managed platform, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AppBaseURL = GetEnv("API_URL", "http://localhost:5000")
	PublicVerifyURL = GetEnv("PUBLIC_VERIFY_URL", "https://abhm-mp.org/verify-member")

	SMTPHost = GetEnv("SMTP_HOST", "smtp-relay.brevo.com")
	SMTPPort = GetEnvInt("SMTP_PORT", 587)
	SMTPUser = GetEnv("SMTP_USER")
	SMTPPass = GetEnv("SMTP_PASS")
	SMTPSenderEmail = GetEnv("SMTP_SENDER_EMAIL", "admin@abhm-mp.org")
	SMTPSenderName = GetEnv("SMTP_SENDER_NAME", "ABHM MP Admin")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}
	if SMTPUser == "" {
		log.Println("⚠️ SMTP_USER is not set, outbound email will fail.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("⚠️ %s is not a number, using default %d", key, defaultValue)
	}
	return defaultValue
}
