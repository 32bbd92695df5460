package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tair/catalog-service/pkg/database"
)

// Config is the complete service configuration
type Config struct {
	Environment string        `koanf:"environment"`
	Log         LogConfig     `koanf:"log"`
	HTTP        HTTPConfig    `koanf:"http"`
	GRPC        GRPCConfig    `koanf:"grpc"`
	DB          DBConfig      `koanf:"db"`
	JWT         JWTConfig     `koanf:"jwt"`
	Storage     StorageConfig `koanf:"storage"`
	Redis       RedisConfig   `koanf:"redis"`
	Kafka       KafkaConfig   `koanf:"kafka"`
	OTEL        OTELConfig    `koanf:"otel"`
	Jaeger      JaegerConfig  `koanf:"jaeger"`
	Tracing     TracingConfig `koanf:"tracing"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type HTTPConfig struct {
	Port    string        `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

type GRPCConfig struct {
	Port string `koanf:"port"`
}

type DBConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslmode"`
}

type JWTConfig struct {
	Secret string        `koanf:"secret"`
	TTL    time.Duration `koanf:"ttl"`
}

// StorageConfig describes the S3 compatible bucket used for images.
// An empty endpoint keeps images inline as data URIs.
type StorageConfig struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Bucket    string `koanf:"bucket"`
	PublicURL string `koanf:"public_url"`
	UseSSL    bool   `koanf:"use_ssl"`
}

type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	TTL      time.Duration `koanf:"ttl"`
}

type KafkaConfig struct {
	Brokers string `koanf:"brokers"`
	Topic   string `koanf:"topic"`
}

type OTELConfig struct {
	ServiceName string `koanf:"service_name"`
}

type JaegerConfig struct {
	Endpoint string `koanf:"endpoint"`
}

type TracingConfig struct {
	Enabled bool `koanf:"enabled"`
}

// IsDevelopment reports whether pretty console logging should be used
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Database converts the DB section to the connection config
func (c *Config) Database() database.Config {
	return database.Config{
		Host:     c.DB.Host,
		Port:     c.DB.Port,
		User:     c.DB.User,
		Password: c.DB.Password,
		DBName:   c.DB.Name,
		SSLMode:  c.DB.SSLMode,
	}
}

// StorageEnabled reports whether images go to object storage
func (c *Config) StorageEnabled() bool {
	return c.Storage.Endpoint != "" && c.Storage.Bucket != ""
}

// KafkaBrokers splits the comma separated broker list
func (c *Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.Kafka.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Validate checks the settings the service cannot start without
func (c *Config) Validate() error {
	var errs []error
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWT.TTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.StorageEnabled() && c.Storage.PublicURL == "" {
		errs = append(errs, errors.New("STORAGE_PUBLIC_URL is required when object storage is enabled"))
	}
	return errors.Join(errs...)
}

func defaultConfig() *Config {
	return &Config{
		Environment: "development",
		Log:         LogConfig{Level: "info"},
		HTTP:        HTTPConfig{Port: "8081", Timeout: 30 * time.Second},
		GRPC:        GRPCConfig{Port: "9091"},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			Name:     "catalogdb",
			SSLMode:  "disable",
		},
		JWT:    JWTConfig{TTL: 7 * 24 * time.Hour},
		Redis:  RedisConfig{TTL: 5 * time.Minute},
		Kafka:  KafkaConfig{Topic: "catalog-events"},
		OTEL:   OTELConfig{ServiceName: "catalog-service"},
		Jaeger: JaegerConfig{Endpoint: "http://localhost:14268/api/traces"},
		Tracing: TracingConfig{
			Enabled: true,
		},
	}
}

// Load reads an optional .env file, then layers struct defaults and
// environment variables. DB_HOST maps to db.host, STORAGE_PUBLIC_URL to
// storage.public_url and so on.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// envKey turns SECTION_REST into section.rest
func envKey(key string) string {
	key = strings.ToLower(key)
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	return section + "." + rest
}
