package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.API.Port != 8080 {
		t.Errorf("api port = %d", cfg.API.Port)
	}
	if cfg.GitHub.BaseURL != "https://api.github.com" {
		t.Errorf("github base url = %q", cfg.GitHub.BaseURL)
	}
	if cfg.GitHub.CacheTTL() != 10*time.Minute {
		t.Errorf("cache ttl = %v", cfg.GitHub.CacheTTL())
	}
	if cfg.Redis.Addr() != "localhost:6379" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr())
	}
	if cfg.MinIO.Enabled {
		t.Error("minio should default to disabled")
	}
	if cfg.Worker.Concurrency != 10 {
		t.Errorf("worker concurrency = %d", cfg.Worker.Concurrency)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "9999")
	t.Setenv("GITHUB_TOKEN", "env-token")
	t.Setenv("GITHUB_CACHE_TTL_MINUTES", "30")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("CLAMD_ADDR", "tcp://clamd:3310")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.API.Port != 9999 {
		t.Errorf("api port = %d", cfg.API.Port)
	}
	if cfg.GitHub.Token != "env-token" {
		t.Errorf("token = %q", cfg.GitHub.Token)
	}
	if cfg.GitHub.CacheTTL() != 30*time.Minute {
		t.Errorf("cache ttl = %v", cfg.GitHub.CacheTTL())
	}
	if cfg.Redis.Addr() != "redis.internal:6379" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr())
	}
	if cfg.Clamd.Addr != "tcp://clamd:3310" {
		t.Errorf("clamd addr = %q", cfg.Clamd.Addr)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("API_PORT", "0")
	if _, err := Load(); err == nil {
		t.Error("zero port should fail validation")
	}
}

func TestValidateMinIOOnlyWhenEnabled(t *testing.T) {
	t.Setenv("MINIO_ENABLED", "true")
	// Defaults carry an endpoint and bucket but no credentials.
	if _, err := Load(); err == nil {
		t.Error("enabled minio without credentials should fail validation")
	}
}

func validConfig() Config {
	return Config{
		API:    APIConfig{Port: 8080},
		GitHub: GitHubConfig{BaseURL: "https://api.github.com", CacheTTLMinutes: 10},
		Redis:  RedisConfig{Host: "localhost", Port: 6379},
		Worker: WorkerConfig{Concurrency: 10},
	}
}

func TestValidateLLMOnlyWhenKeySet(t *testing.T) {
	cfg := validConfig()
	if err := validate(cfg); err != nil {
		t.Fatalf("baseline config should validate: %v", err)
	}

	cfg.LLM.APIKey = "key"
	if err := validate(cfg); err == nil {
		t.Error("api key without model should fail validation")
	}

	cfg.LLM.Model = "gemini-1.5-flash"
	cfg.LLM.Endpoint = "https://generativelanguage.googleapis.com/v1beta"
	if err := validate(cfg); err != nil {
		t.Errorf("complete llm config should validate: %v", err)
	}
}
