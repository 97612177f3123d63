package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTP     HTTPConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	OTP      OTPConfig

	JWTSecret       string
	RolePolicyPath  string
	OutboxPollEvery time.Duration
}

type HTTPConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type PostgresConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
	// AutoMigrate creates missing tables on startup.
	AutoMigrate bool
}

type RedisConfig struct {
	Addr       string
	MaxRetries int
}

type KafkaConfig struct {
	Broker            string
	EmployeeEvents    string
	EmployeeLifecycle string
	EmailTopic        string
	ConsumerGroup     string
}

type OTPConfig struct {
	TTL       time.Duration
	Retention time.Duration
}

// Load reads the process environment. godotenv is applied by main before this runs.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			Port:            getEnv("PORT", "3000"),
			ReadTimeout:     getDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    os.Getenv("DB_PASSWORD"),
			Name:        getEnv("DB_NAME", "hrm"),
			Port:        getEnv("DB_PORT", "5432"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxRetries:  getInt("DB_MAX_RETRIES", 5),
			AutoMigrate: getBool("DB_AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", "localhost:6379"),
			MaxRetries: getInt("REDIS_MAX_RETRIES", 5),
		},
		Kafka: KafkaConfig{
			Broker:            os.Getenv("KAFKA_BROKER"),
			EmployeeEvents:    getEnv("KAFKA_TOPIC_EMPLOYEE_EVENTS", "hr.employee.events.v1"),
			EmployeeLifecycle: getEnv("KAFKA_TOPIC_EMPLOYEE_LIFECYCLE", "hr.employee.lifecycle.v1"),
			EmailTopic:        getEnv("KAFKA_TOPIC_EMAIL", "hr.notification.email.v1"),
			ConsumerGroup:     getEnv("KAFKA_CONSUMER_GROUP", "go-hrm-employee-import"),
		},
		OTP: OTPConfig{
			TTL:       getDuration("OTP_TTL", 300*time.Second),
			Retention: getDuration("OTP_RETENTION", 10*time.Minute),
		},
		JWTSecret:       os.Getenv("JWT_SECRET"),
		RolePolicyPath:  getEnv("ROLE_POLICY_PATH", "configs/role_levels.yaml"),
		OutboxPollEvery: getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
	}

	if cfg.OTP.Retention < cfg.OTP.TTL {
		return Config{}, fmt.Errorf("OTP_RETENTION (%s) must not be shorter than OTP_TTL (%s)", cfg.OTP.Retention, cfg.OTP.TTL)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
