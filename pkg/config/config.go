package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
}

// DynamoDBConfig points the service at AWS or a local DynamoDB.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires them,
// hence the "local" defaults.
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	OrdersTable     string
	UsersTable      string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// DefaultJWTSecret is only meant for local development.
const DefaultJWTSecret = "change-me"

type JWTConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// InsecureSecret reports whether tokens would be signed with the built-in
// development secret.
func (c JWTConfig) InsecureSecret() bool {
	return c.SecretKey == DefaultJWTSecret
}

type LogConfig struct {
	Level string
}

type Config struct {
	Server   ServerConfig
	DynamoDB DynamoDBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Log      LogConfig
}

// New loads .env (if present) and reads the configuration from the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, using process environment")
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		},
		DynamoDB: DynamoDBConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			Endpoint:        getEnv("DYNAMODB_ENDPOINT", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			OrdersTable:     getEnv("ORDERS_TABLE", "orders"),
			UsersTable:      getEnv("USERS_TABLE", "users"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET_KEY", DefaultJWTSecret),
			Issuer:    getEnv("JWT_ISSUER", "rocket_help"),
			TTL:       getDuration("JWT_TTL", 24*time.Hour),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("warning: invalid duration for %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("warning: invalid integer for %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
