package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Paystack PaystackConfig
	SMTP     SMTPConfig
}

type AppConfig struct {
	Port        string
	Env         string
	FrontendURL string
}

func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type PaystackConfig struct {
	SecretKey string
	BaseURL   string
	Timeout   time.Duration
	// TestAmountCap is a development-only ceiling applied to charge amounts
	// so sandbox accounts are never asked to process real-sized figures.
	// Zero disables capping. Ignored outside the development environment.
	TestAmountCap int64
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	paystackTimeout, err := time.ParseDuration(viper.GetString("PAYSTACK_TIMEOUT"))
	if err != nil {
		paystackTimeout = 10 * time.Second
	}

	paystackBaseURL := viper.GetString("PAYSTACK_BASE_URL")
	if paystackBaseURL == "" {
		paystackBaseURL = "https://api.paystack.co"
	}

	config := &Config{
		App: AppConfig{
			Port:        viper.GetString("APP_PORT"),
			Env:         viper.GetString("APP_ENV"),
			FrontendURL: viper.GetString("FRONTEND_URL"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Paystack: PaystackConfig{
			SecretKey:     viper.GetString("PAYSTACK_SECRET_KEY"),
			BaseURL:       paystackBaseURL,
			Timeout:       paystackTimeout,
			TestAmountCap: viper.GetInt64("PAYSTACK_TEST_AMOUNT_CAP"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: viper.GetString("SMTP_USERNAME"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
		},
	}

	return config, nil
}
