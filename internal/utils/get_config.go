package utils

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`

	// Application
	AppPort      string `yaml:"APP_PORT"`
	AppURL       string `yaml:"APP_URL"`
	TimeZone     string `yaml:"TIMEZONE"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
	DigestRecipient  string `yaml:"DIGEST_RECIPIENT"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		DBHost:       "localhost",
		DBPort:       "5432",
		DBSSLMode:    "disable",
		AppPort:      "3000",
		AppURL:       "http://localhost:3000",
		TimeZone:     "UTC",
		RateLimitMax: 20,
	}
}

// LoadConfig reads config.yaml, or the file named by CONFIG_PATH. Keys missing
// from the file keep their defaults.
func LoadConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if err := LoadConfigFile(path); err != nil {
		log.Printf("Error loading config %s: %s\n", path, err)
	}
}

func LoadConfigFile(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	loaded := defaultConfig()
	if err := yaml.Unmarshal(file, &loaded); err != nil {
		return err
	}
	config = loaded
	return nil
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "TIMEZONE":
		return config.TimeZone
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "DIGEST_RECIPIENT":
		return config.DigestRecipient
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

// GetLocation is the zone "today" is taken in when counting days to expiry.
func GetLocation() *time.Location {
	loc, err := time.LoadLocation(config.TimeZone)
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, using local time\n", config.TimeZone)
		return time.Local
	}
	return loc
}

func GetRateLimitMax() int {
	if config.RateLimitMax < 1 {
		return defaultConfig().RateLimitMax
	}
	return config.RateLimitMax
}
