package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	// Пустой DATABASE_URL - состояние хранится в памяти процесса
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8000"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config. Пустой REDIS_ADDR отключает кеш и вебхуки
	RedisAddr        string        `env:"REDIS_ADDR"`
	RedisPass        string        `env:"REDIS_PASSWORD"`
	RedisDB          int           `env:"REDIS_DB" envDefault:"0"`
	IncidentCacheTTL time.Duration `env:"INCIDENT_CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication. Пустой список - мутирующие маршруты открыты
	APIKeys []string `env:"API_KEYS"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:5173,http://localhost:3000"`

	// Simulator Config
	SimulatorEnabled             bool          `env:"SIMULATOR_ENABLED" envDefault:"true"`
	SimulatorInterval            time.Duration `env:"SIMULATOR_INTERVAL" envDefault:"30s"`
	SimulatorIncidentProbability float64       `env:"SIMULATOR_INCIDENT_PROBABILITY" envDefault:"0.05"`
	SimulatorTrafficProbability  float64       `env:"SIMULATOR_TRAFFIC_PROBABILITY" envDefault:"0.03"`
	SimulatorJitter              float64       `env:"SIMULATOR_JITTER" envDefault:"0.001"`
	SimulatorSpread              float64       `env:"SIMULATOR_SPREAD" envDefault:"0.05"`
	SimulatorReferenceLat        float64       `env:"SIMULATOR_REFERENCE_LAT" envDefault:"38.9072"`
	SimulatorReferenceLng        float64       `env:"SIMULATOR_REFERENCE_LNG" envDefault:"-77.0369"`
	// SimulatorSeed == 0 - случайное зерно при каждом запуске
	SimulatorSeed uint64 `env:"SIMULATOR_SEED" envDefault:"0"`

	// Live channel Config
	KeepaliveInterval time.Duration `env:"KEEPALIVE_INTERVAL" envDefault:"30s"`
	WSWriteTimeout    time.Duration `env:"WS_WRITE_TIMEOUT" envDefault:"5s"`
	WSSendBuffer      int           `env:"WS_SEND_BUFFER" envDefault:"64"`

	SeedSampleData bool `env:"SEED_SAMPLE_DATA" envDefault:"true"`

	// WMATA Config
	WMATAAPIKey  string `env:"WMATA_API_KEY"`
	WMATABaseURL string `env:"WMATA_BASE_URL" envDefault:"https://api.wmata.com"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:                  os.Getenv("DATABASE_URL"),
		MigrationsPath:               getEnv("MIGRATIONS_PATH", "file://migrations"),
		HTTPPort:                     getEnv("HTTP_PORT", "8000"),
		LogLevel:                     getEnv("LOG_LEVEL", "info"),
		RedisAddr:                    os.Getenv("REDIS_ADDR"),
		RedisPass:                    os.Getenv("REDIS_PASSWORD"),
		RedisDB:                      getEnvAsInt("REDIS_DB", 0),
		IncidentCacheTTL:             getEnvAsDuration("INCIDENT_CACHE_TTL", 5*time.Minute),
		WebhookURL:                   os.Getenv("WEBHOOK_URL"),
		WebhookSecret:                os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:               getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:            getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:             getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		APIKeys:                      getEnvAsList("API_KEYS", nil),
		CORSAllowedOrigins:           getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		SimulatorEnabled:             getEnvAsBool("SIMULATOR_ENABLED", true),
		SimulatorInterval:            getEnvAsDuration("SIMULATOR_INTERVAL", 30*time.Second),
		SimulatorIncidentProbability: getEnvAsFloat("SIMULATOR_INCIDENT_PROBABILITY", 0.05),
		SimulatorTrafficProbability:  getEnvAsFloat("SIMULATOR_TRAFFIC_PROBABILITY", 0.03),
		SimulatorJitter:              getEnvAsFloat("SIMULATOR_JITTER", 0.001),
		SimulatorSpread:              getEnvAsFloat("SIMULATOR_SPREAD", 0.05),
		SimulatorReferenceLat:        getEnvAsFloat("SIMULATOR_REFERENCE_LAT", 38.9072),
		SimulatorReferenceLng:        getEnvAsFloat("SIMULATOR_REFERENCE_LNG", -77.0369),
		SimulatorSeed:                uint64(getEnvAsInt("SIMULATOR_SEED", 0)),
		KeepaliveInterval:            getEnvAsDuration("KEEPALIVE_INTERVAL", 30*time.Second),
		WSWriteTimeout:               getEnvAsDuration("WS_WRITE_TIMEOUT", 5*time.Second),
		WSSendBuffer:                 getEnvAsInt("WS_SEND_BUFFER", 64),
		SeedSampleData:               getEnvAsBool("SEED_SAMPLE_DATA", true),
		WMATAAPIKey:                  os.Getenv("WMATA_API_KEY"),
		WMATABaseURL:                 getEnv("WMATA_BASE_URL", "https://api.wmata.com"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, при которых сервис не может корректно работать
func (c *Config) Validate() error {
	var errs []error
	if c.SimulatorIncidentProbability < 0 || c.SimulatorIncidentProbability > 1 {
		errs = append(errs, fmt.Errorf("SIMULATOR_INCIDENT_PROBABILITY must be within [0,1], got %v", c.SimulatorIncidentProbability))
	}
	if c.SimulatorTrafficProbability < 0 || c.SimulatorTrafficProbability > 1 {
		errs = append(errs, fmt.Errorf("SIMULATOR_TRAFFIC_PROBABILITY must be within [0,1], got %v", c.SimulatorTrafficProbability))
	}
	if c.SimulatorInterval <= 0 {
		errs = append(errs, fmt.Errorf("SIMULATOR_INTERVAL must be positive, got %s", c.SimulatorInterval))
	}
	if c.KeepaliveInterval <= 0 {
		errs = append(errs, fmt.Errorf("KEEPALIVE_INTERVAL must be positive, got %s", c.KeepaliveInterval))
	}
	if c.WSWriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("WS_WRITE_TIMEOUT must be positive, got %s", c.WSWriteTimeout))
	}
	if c.WSSendBuffer <= 0 {
		errs = append(errs, fmt.Errorf("WS_SEND_BUFFER must be positive, got %d", c.WSSendBuffer))
	}
	if c.WebhookMaxRetries < 0 {
		errs = append(errs, fmt.Errorf("WEBHOOK_MAX_RETRIES must not be negative, got %d", c.WebhookMaxRetries))
	}
	return errors.Join(errs...)
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пропуская пустые элементы
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
