package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Ошибки валидации конфигурации.
var (
	// ErrMissingAPIKey — не задан POLLINATION_API_KEY.
	ErrMissingAPIKey = errors.New("POLLINATION_API_KEY is not set")

	// ErrMissingOrg — не задан POLLINATION_ORG.
	ErrMissingOrg = errors.New("POLLINATION_ORG is not set")
)

// TODO: поменять default на https://api.pollination.cloud, когда recipes
// будут опубликованы в production registry.
const defaultAPIURL = "https://api.staging.pollination.cloud"

// Config — конфигурация клиента и CLI.
type Config struct {
	API     APIConfig
	Poll    PollConfig
	Logger  LoggerConfig
	Metrics MetricsConfig
}

// APIConfig — параметры подключения к Pollination API.
type APIConfig struct {
	// URL — базовый адрес API.
	URL string

	// Key — API-ключ (заголовок x-pollination-token).
	Key string

	// Org — аккаунт-владелец проектов.
	Org string

	// Timeout — таймаут одного HTTP-запроса.
	Timeout time.Duration

	// RateLimit — максимум запросов в секунду с клиента.
	RateLimit float64
}

// PollConfig — параметры поллинга статуса job.
type PollConfig struct {
	// Interval — пауза между опросами.
	Interval time.Duration

	// MaxPolls — бюджет опросов; после его исчерпания ожидание
	// завершается ошибкой.
	MaxPolls int
}

// LoggerConfig — параметры логирования.
type LoggerConfig struct {
	Level  string
	Format string
}

// MetricsConfig — параметры экспорта метрик.
type MetricsConfig struct {
	// Addr — адрес для /healthz и /metrics. Пустая строка — метрики
	// не экспортируются (режим короткоживущих команд).
	Addr string
}

// Load читает конфигурацию из окружения.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("POLLINATION_API_URL", defaultAPIURL)
	v.SetDefault("POLLINATION_TIMEOUT", "30s")
	v.SetDefault("POLLINATION_POLL_INTERVAL", "60s")
	v.SetDefault("POLLINATION_MAX_POLLS", 5)
	v.SetDefault("POLLINATION_RATE_LIMIT", 5.0)
	v.SetDefault("POLLINATION_METRICS_ADDR", "")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("LOG_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("POLLINATION_TIMEOUT"))
	if err != nil {
		timeout = 30 * time.Second
	}

	interval, err := time.ParseDuration(v.GetString("POLLINATION_POLL_INTERVAL"))
	if err != nil {
		interval = 60 * time.Second
	}

	cfg := &Config{
		API: APIConfig{
			URL:       v.GetString("POLLINATION_API_URL"),
			Key:       v.GetString("POLLINATION_API_KEY"),
			Org:       v.GetString("POLLINATION_ORG"),
			Timeout:   timeout,
			RateLimit: v.GetFloat64("POLLINATION_RATE_LIMIT"),
		},
		Poll: PollConfig{
			Interval: interval,
			MaxPolls: v.GetInt("POLLINATION_MAX_POLLS"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Metrics: MetricsConfig{
			Addr: v.GetString("POLLINATION_METRICS_ADDR"),
		},
	}

	return cfg, nil
}

// Validate проверяет обязательные переменные.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return ErrMissingAPIKey
	}
	if c.API.Org == "" {
		return ErrMissingOrg
	}
	return nil
}
