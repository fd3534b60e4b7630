package config

import (
	"testing"
	"time"
)

func TestGetThinkDelay(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want time.Duration
	}{
		{"empty", "", 800 * time.Millisecond},
		{"invalid", "abc", 800 * time.Millisecond},
		{"negative", "-100", 800 * time.Millisecond},
		{"zero", "0", 0},
		{"valid_small", "50", 50 * time.Millisecond},
		{"valid_default", "800", 800 * time.Millisecond},
		{"over_cap", "60000", 10 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RESPONSE_DELAY_MS", tt.env)
			if got := getThinkDelay(); got != tt.want {
				t.Errorf("getThinkDelay() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SENTRY_DSN", "")
	t.Setenv("RESPONSE_DELAY_MS", "100")

	NewConfig()

	if Config.Server.Port != "9090" {
		t.Errorf("Port = %q; want 9090", Config.Server.Port)
	}
	if Config.Sentry.IsEnabled() {
		t.Error("Sentry should be disabled without a DSN")
	}
	if Config.Responder.ThinkDelay != 100*time.Millisecond {
		t.Errorf("ThinkDelay = %v; want 100ms", Config.Responder.ThinkDelay)
	}
}
