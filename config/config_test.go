package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Redis.URL != "" {
		t.Errorf("expected redis to be disabled by default, got %q", cfg.Redis.URL)
	}
	if cfg.Notifications.DueSoonWindow != 72*time.Hour {
		t.Errorf("expected due soon window 72h, got %s", cfg.Notifications.DueSoonWindow)
	}
	if cfg.AMQP.ExchangeName != "erp.events" {
		t.Errorf("expected exchange erp.events, got %s", cfg.AMQP.ExchangeName)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("NOTIFICATION_WORKER_ENABLED", "false")
	t.Setenv("NOTIFICATION_WORKER_POLL_INTERVAL", "30s")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Notifications.WorkerEnabled {
		t.Error("expected worker to be disabled")
	}
	if cfg.Notifications.PollInterval != 30*time.Second {
		t.Errorf("expected poll interval 30s, got %s", cfg.Notifications.PollInterval)
	}
	if cfg.Redis.URL != "redis://cache:6379/1" {
		t.Errorf("unexpected redis url %q", cfg.Redis.URL)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("DB_CONN_MAX_LIFETIME", "forever")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected fallback port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.ConnMaxLifetime != 5*time.Minute {
		t.Errorf("expected fallback lifetime 5m, got %s", cfg.Database.ConnMaxLifetime)
	}
}
