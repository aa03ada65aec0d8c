package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/infogrowkro/growkroweb/internal/models"
	"github.com/infogrowkro/growkroweb/internal/payments"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}, nil
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

func LoadRazorpayConfig() (*RazorpayConfig, error) {
	return &RazorpayConfig{
		KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
	}, nil
}

// InitPaymentGateway builds the Razorpay client, or returns nil when the
// key pair is absent so the rest of the API can still serve.
func InitPaymentGateway(cfg *RazorpayConfig) payments.Gateway {
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil
	}
	return payments.NewRazorpayGateway(cfg.KeyID, cfg.KeySecret)
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Creator{},
		&models.BusinessOwner{},
		&models.PaymentTransaction{},
		&models.CollaborationRequest{},
		&models.Notification{},
		&models.OTP{},
	)
}
