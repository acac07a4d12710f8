package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full process configuration. Zero-valued backends (empty DSN,
// Redis URL or broker list) select the in-memory implementations.
type Config struct {
	Server   Server         `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	S3       S3Config       `yaml:"s3"`
	Delivery DeliveryConfig `yaml:"delivery"`
	Lockout  LockoutConfig  `yaml:"lockout"`
	LogLevel string         `yaml:"log_level"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string        `yaml:"addr"`
	AdminToken     string        `yaml:"admin_token"`
	JWTSigningKey  string        `yaml:"jwt_signing_key"`
	JWTIssuer      string        `yaml:"jwt_issuer"`
	JWTAudience    string        `yaml:"jwt_audience"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// MasterKeyPepper keys the lookup digest of receiver master keys.
	MasterKeyPepper string `yaml:"master_key_pepper"`
}

type DatabaseConfig struct {
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	Migrate      bool   `yaml:"migrate"`
}

type RedisConfig struct {
	URL          string        `yaml:"url"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type KafkaConfig struct {
	Brokers         []string      `yaml:"brokers"`
	AuditTopic      string        `yaml:"audit_topic"`
	RelayInterval   time.Duration `yaml:"relay_interval"`
	TopicPartitions int32         `yaml:"topic_partitions"`
}

type S3Config struct {
	Region        string        `yaml:"region"`
	Endpoint      string        `yaml:"endpoint"`
	Bucket        string        `yaml:"bucket"`
	AccessKey     string        `yaml:"access_key"`
	SecretKey     string        `yaml:"secret_key"`
	PublicBaseURL string        `yaml:"public_base_url"`
	PresignTTL    time.Duration `yaml:"presign_ttl"`
}

// DeliveryConfig holds release policy knobs.
type DeliveryConfig struct {
	InactivityThresholdDays int           `yaml:"inactivity_threshold_days"`
	CapabilityCacheTTL      time.Duration `yaml:"capability_cache_ttl"`
	StatusCacheTTL          time.Duration `yaml:"status_cache_ttl"`
	EmailCodeTTL            time.Duration `yaml:"email_code_ttl"`
	EmailCodeMaxAttempts    int           `yaml:"email_code_max_attempts"`
	EvaluationConcurrency   int           `yaml:"evaluation_concurrency"`
}

type LockoutConfig struct {
	AttemptsPerWindow int           `yaml:"attempts_per_window"`
	Window            time.Duration `yaml:"window"`
	HardLockDuration  time.Duration `yaml:"hard_lock_duration"`
}

// Default returns the development defaults.
func Default() Config {
	return Config{
		Server: Server{
			Addr:            ":8080",
			JWTSigningKey:   "dev-secret-key-change-in-production",
			JWTIssuer:       "afternote",
			JWTAudience:     "afternote-app",
			RequestTimeout:  30 * time.Second,
			MasterKeyPepper: "dev-pepper-change-in-production",
		},
		Database: DatabaseConfig{MaxOpenConns: 20, MaxIdleConns: 5, Migrate: true},
		Redis: RedisConfig{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{AuditTopic: "afternote.audit", RelayInterval: 2 * time.Second, TopicPartitions: 3},
		S3:    S3Config{Region: "ap-northeast-2", Bucket: "afternote-documents", PresignTTL: 15 * time.Minute},
		Delivery: DeliveryConfig{
			InactivityThresholdDays: 365,
			CapabilityCacheTTL:      5 * time.Minute,
			StatusCacheTTL:          30 * time.Second,
			EmailCodeTTL:            5 * time.Minute,
			EmailCodeMaxAttempts:    5,
			EvaluationConcurrency:   8,
		},
		Lockout: LockoutConfig{
			AttemptsPerWindow: 5,
			Window:            15 * time.Minute,
			HardLockDuration:  15 * time.Minute,
		},
		LogLevel: "info",
	}
}

// Load builds the configuration: defaults, then the optional YAML file, then
// environment variables (a local .env file is loaded first when present).
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the services cannot run with.
func (c Config) Validate() error {
	if c.Delivery.InactivityThresholdDays <= 0 {
		return fmt.Errorf("delivery.inactivity_threshold_days must be positive")
	}
	if c.Server.JWTSigningKey == "" {
		return fmt.Errorf("server.jwt_signing_key is required")
	}
	if c.Server.MasterKeyPepper == "" {
		return fmt.Errorf("server.master_key_pepper is required")
	}
	if c.Lockout.AttemptsPerWindow <= 0 {
		return fmt.Errorf("lockout.attempts_per_window must be positive")
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Addr = getEnv("AFTERNOTE_ADDR", cfg.Server.Addr)
	cfg.Server.AdminToken = getEnv("ADMIN_API_TOKEN", cfg.Server.AdminToken)
	cfg.Server.JWTSigningKey = getEnv("JWT_SIGNING_KEY", cfg.Server.JWTSigningKey)
	cfg.Server.JWTIssuer = getEnv("JWT_ISSUER", cfg.Server.JWTIssuer)
	cfg.Server.JWTAudience = getEnv("JWT_AUDIENCE", cfg.Server.JWTAudience)
	cfg.Server.MasterKeyPepper = getEnv("MASTER_KEY_PEPPER", cfg.Server.MasterKeyPepper)
	cfg.Server.RequestTimeout = getDuration("REQUEST_TIMEOUT", cfg.Server.RequestTimeout)

	cfg.Database.DSN = getEnv("DATABASE_URL", cfg.Database.DSN)
	cfg.Redis.URL = getEnv("REDIS_URL", cfg.Redis.URL)

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.Kafka.Brokers = splitList(brokers)
	}
	cfg.Kafka.AuditTopic = getEnv("KAFKA_AUDIT_TOPIC", cfg.Kafka.AuditTopic)

	cfg.S3.Region = getEnv("S3_REGION", cfg.S3.Region)
	cfg.S3.Endpoint = getEnv("S3_ENDPOINT", cfg.S3.Endpoint)
	cfg.S3.Bucket = getEnv("S3_BUCKET", cfg.S3.Bucket)
	cfg.S3.AccessKey = getEnv("S3_ACCESS_KEY", cfg.S3.AccessKey)
	cfg.S3.SecretKey = getEnv("S3_SECRET_KEY", cfg.S3.SecretKey)
	cfg.S3.PublicBaseURL = getEnv("S3_PUBLIC_BASE_URL", cfg.S3.PublicBaseURL)

	cfg.Delivery.InactivityThresholdDays = getInt("INACTIVITY_THRESHOLD_DAYS", cfg.Delivery.InactivityThresholdDays)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
