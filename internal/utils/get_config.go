package utils

import (
	"Recipe-Share/domain"
	"errors"
	"fmt"
	"gopkg.in/yaml.v2"
	"os"
	"strconv"
)

type Config struct {
	AppPort string `yaml:"APP_PORT"`
	// LogPath is where the access log is written.
	LogPath string `yaml:"LOG_PATH"`
	// RateLimit is the number of requests allowed per client per second.
	RateLimit int `yaml:"RATE_LIMIT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Image storage, "s3" or "gcs"
	StorageDriver string `yaml:"STORAGE_DRIVER"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Google Cloud Storage configuration
	GCSBucket string `yaml:"GCS_BUCKET"`

	// Feed configuration
	FeedPageSize int `yaml:"FEED_PAGE_SIZE"`
	// FeedFanOut bounds concurrent favourite lookups while decorating a page, 0 is unbounded.
	FeedFanOut int `yaml:"FEED_FAN_OUT"`
}

// LoadConfig reads the YAML file at path, then applies RECIPES_<KEY>
// environment overrides and defaults. A missing file is not an error so the
// server can be configured from the environment alone.
func LoadConfig(path string) (*Config, error) {
	var config Config
	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("utils: reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(file, &config); err != nil {
			return nil, fmt.Errorf("utils: parsing config file: %w", err)
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	config.setDefaults()

	if config.JWTSecret == "" {
		return nil, errors.New("utils: JWT_SECRET is required")
	}
	return &config, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"APP_PORT":           &c.AppPort,
		"LOG_PATH":           &c.LogPath,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"DB_TIMEZONE":        &c.DBTimeZone,
		"JWT_SECRET":         &c.JWTSecret,
		"APP_URL":            &c.AppURL,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
		"STORAGE_DRIVER":     &c.StorageDriver,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
		"GCS_BUCKET":         &c.GCSBucket,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv("RECIPES_" + key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"RATE_LIMIT":     &c.RateLimit,
		"FEED_PAGE_SIZE": &c.FeedPageSize,
		"FEED_FAN_OUT":   &c.FeedFanOut,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv("RECIPES_" + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("utils: RECIPES_%s: %w", key, err)
		}
		*dst = n
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.AppPort == "" {
		c.AppPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "./logs/app.log"
	}
	if c.RateLimit <= 0 {
		c.RateLimit = 20
	}
	if c.DBTimeZone == "" {
		c.DBTimeZone = "UTC"
	}
	if c.StorageDriver == "" {
		c.StorageDriver = "s3"
	}
	if c.FeedPageSize <= 0 || c.FeedPageSize > domain.MaxPageSize {
		c.FeedPageSize = domain.DefaultPageSize
	}
}

// DSN is the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBTimeZone,
	)
}
