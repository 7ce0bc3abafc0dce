package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Forecast ForecastConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type ForecastConfig struct {
	// DefaultHorizonDays is used when a request does not specify one.
	DefaultHorizonDays int
	// MaxHorizonDays bounds the per-request horizon.
	MaxHorizonDays int
	// YearlySeasonality toggles month-of-year effects in the seasonal model.
	YearlySeasonality bool
	// SalesArtifactName is the artifact-store key for the boosted sales model.
	SalesArtifactName string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "HotelDeskAI"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Forecast: ForecastConfig{
			DefaultHorizonDays: getEnvInt("FORECAST_DEFAULT_HORIZON_DAYS", 30),
			MaxHorizonDays:     getEnvInt("FORECAST_MAX_HORIZON_DAYS", 30),
			YearlySeasonality:  getEnvBool("FORECAST_YEARLY_SEASONALITY", false),
			SalesArtifactName:  getEnv("FORECAST_SALES_ARTIFACT", "sales.gbt"),
		},
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("DB_HOST is required")
	}
	if cfg.Database.User == "" {
		return nil, errors.New("DB_USER is required")
	}
	if cfg.Database.Name == "" {
		return nil, errors.New("DB_NAME is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
