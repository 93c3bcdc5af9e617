package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "REQUEST_TIMEOUT", "ORDERS_TABLE", "USERS_TABLE", "JWT_TTL", "REDIS_DB", "DYNAMODB_ENDPOINT"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout != 10*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.Server.RequestTimeout)
	}
	if cfg.DynamoDB.OrdersTable != "orders" || cfg.DynamoDB.UsersTable != "users" {
		t.Fatalf("unexpected tables: %+v", cfg.DynamoDB)
	}
	if cfg.DynamoDB.Endpoint != "" {
		t.Fatalf("expected empty endpoint, got %q", cfg.DynamoDB.Endpoint)
	}
	if cfg.JWT.TTL != 24*time.Hour {
		t.Fatalf("unexpected jwt ttl: %s", cfg.JWT.TTL)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ORDERS_TABLE", "orders-test")

	cfg := FromEnv()
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected 9090, got %q", cfg.Server.Port)
	}
	if cfg.JWT.TTL != 90*time.Minute {
		t.Fatalf("expected 90m, got %s", cfg.JWT.TTL)
	}
	if cfg.Redis.DB != 3 {
		t.Fatalf("expected db 3, got %d", cfg.Redis.DB)
	}
	if cfg.DynamoDB.OrdersTable != "orders-test" {
		t.Fatalf("unexpected orders table %q", cfg.DynamoDB.OrdersTable)
	}
}

func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("REDIS_DB", "x")

	cfg := FromEnv()
	if cfg.Server.RequestTimeout != 10*time.Second {
		t.Fatalf("expected fallback timeout, got %s", cfg.Server.RequestTimeout)
	}
	if cfg.Redis.DB != 0 {
		t.Fatalf("expected fallback db, got %d", cfg.Redis.DB)
	}
}

func TestJWTConfig_InsecureSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	if !FromEnv().JWT.InsecureSecret() {
		t.Fatalf("expected the development secret to be flagged")
	}

	t.Setenv("JWT_SECRET_KEY", "s3cr3t-from-vault")
	if FromEnv().JWT.InsecureSecret() {
		t.Fatalf("expected a configured secret to be accepted")
	}
}
