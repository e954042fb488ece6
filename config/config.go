package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Detector DetectorConfig
	Report   ReportConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	MigrationsPath string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AuthConfig holds the shared secret used to verify access tokens issued
// by the external auth service. This service never issues tokens itself.
type AuthConfig struct {
	Secret string
}

type DetectorConfig struct {
	Interval   time.Duration
	WindowDays int
}

type ReportConfig struct {
	CacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	detectorInterval, err := time.ParseDuration(viper.GetString("DETECTOR_INTERVAL"))
	if err != nil {
		detectorInterval = 10 * time.Second
	}

	detectorWindowDays := viper.GetInt("DETECTOR_WINDOW_DAYS")
	if detectorWindowDays <= 0 {
		detectorWindowDays = 30
	}

	reportCacheTTL, err := time.ParseDuration(viper.GetString("REPORT_CACHE_TTL"))
	if err != nil {
		reportCacheTTL = time.Minute
	}

	migrationsPath := viper.GetString("DB_MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "db/migrations"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:           viper.GetString("DB_HOST"),
			Port:           viper.GetString("DB_PORT"),
			User:           viper.GetString("DB_USER"),
			Password:       viper.GetString("DB_PASSWORD"),
			Name:           viper.GetString("DB_NAME"),
			MigrationsPath: migrationsPath,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			Secret: viper.GetString("AUTH_JWT_SECRET"),
		},
		Detector: DetectorConfig{
			Interval:   detectorInterval,
			WindowDays: detectorWindowDays,
		},
		Report: ReportConfig{
			CacheTTL: reportCacheTTL,
		},
	}

	return config, nil
}
