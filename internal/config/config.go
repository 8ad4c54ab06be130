package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	// Pool bounds. MaxConns must cover PAYROLL_BATCH_CONCURRENCY so a full
	// batch fan-out never queues on the pool.
	MinConns int32
	MaxConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the calculation settings that are deployment concerns
// rather than statutory table data.
type PayrollConfig struct {
	// TaxTableDir is an optional directory of YAML table files overlaying
	// the built-in fixtures.
	TaxTableDir string
	// BatchConcurrency bounds the period-calculation worker pool.
	BatchConcurrency int
	// DefaultWorkRiskRatePercent applies when a company has no employer
	// configuration row. Class I premium.
	DefaultWorkRiskRatePercent decimal.Decimal
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	minConns, err := strconv.Atoi(getEnv("DB_POOL_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_POOL_MIN_CONNS: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_POOL_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_POOL_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "nomina"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MinConns: int32(minConns),
		MaxConns: int32(maxConns),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	batchConcurrency, err := strconv.Atoi(getEnv("PAYROLL_BATCH_CONCURRENCY", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_BATCH_CONCURRENCY: %w", err)
	}
	workRisk, err := decimal.NewFromString(getEnv("PAYROLL_DEFAULT_WORK_RISK_RATE", "0.54355"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DEFAULT_WORK_RISK_RATE: %w", err)
	}

	config.Payroll = PayrollConfig{
		TaxTableDir:                getEnv("PAYROLL_TAX_TABLE_DIR", ""),
		BatchConcurrency:           batchConcurrency,
		DefaultWorkRiskRatePercent: workRisk,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.BatchConcurrency <= 0 {
		return fmt.Errorf("PAYROLL_BATCH_CONCURRENCY must be positive")
	}
	if c.Database.MaxConns <= 0 || c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_POOL_MIN_CONNS and DB_POOL_MAX_CONNS must satisfy 0 <= min <= max with max positive")
	}
	if int(c.Database.MaxConns) < c.Payroll.BatchConcurrency {
		return fmt.Errorf("DB_POOL_MAX_CONNS must be at least PAYROLL_BATCH_CONCURRENCY")
	}
	return nil
}

// DatabaseURL builds the pgx connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port,
		c.Database.Name, c.Database.SSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
