package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "LOG_LEVEL", "POSTGRES_URL", "REDIS_URL",
		"PHONEMASK_SERVICE_HTTP_PORT", "PHONEMASK_SERVICE_GRPC_PORT",
		"PHONEMASK_SERVICE_CERT_PATH", "PHONEMASK_SERVICE_KEY_PATH", "GRPC_TLS_CA_PATH",
		"PHONEMASK_DEFAULT_COUNTRY", "PHONEMASK_GUESS_CACHE_SIZE", "PHONEMASK_RESULT_CACHE_TTL",
		"PHONEMASK_DISABLE_COUNTRY_CODE", "PHONEMASK_DISABLE_AUTO_FORMAT", "PHONEMASK_ENABLE_LONG_NUMBERS",
	} {
		t.Setenv(key, "")
	}
	// t.Setenv ile boş bırakılan anahtarlar mevcut sayılır; string alanlar boş gelir.
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("PHONEMASK_SERVICE_HTTP_PORT", "12060")
	t.Setenv("PHONEMASK_SERVICE_GRPC_PORT", "12061")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if cfg.PhoneMask.GuessCacheSize != 4096 {
		t.Errorf("GuessCacheSize = %d, want 4096", cfg.PhoneMask.GuessCacheSize)
	}
	if cfg.PhoneMask.ResultCacheTTL != 5*time.Minute {
		t.Errorf("ResultCacheTTL = %s, want 5m", cfg.PhoneMask.ResultCacheTTL)
	}
	if cfg.TLS.Enabled() {
		t.Error("TLS should be disabled without certificate paths")
	}
	if cfg.DatabaseURL != "" || cfg.RedisURL != "" {
		t.Errorf("unexpected infra urls: %q %q", cfg.DatabaseURL, cfg.RedisURL)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PHONEMASK_DEFAULT_COUNTRY", "TR")
	t.Setenv("PHONEMASK_GUESS_CACHE_SIZE", "0")
	t.Setenv("PHONEMASK_RESULT_CACHE_TTL", "30s")
	t.Setenv("PHONEMASK_ENABLE_LONG_NUMBERS", "true")
	t.Setenv("PHONEMASK_DISABLE_COUNTRY_CODE", "1")
	t.Setenv("PHONEMASK_SERVICE_CERT_PATH", "")
	t.Setenv("PHONEMASK_SERVICE_KEY_PATH", "")
	t.Setenv("GRPC_TLS_CA_PATH", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	pm := cfg.PhoneMask
	if pm.DefaultCountry != "TR" || pm.GuessCacheSize != 0 || pm.ResultCacheTTL != 30*time.Second {
		t.Errorf("unexpected phonemask config: %+v", pm)
	}
	if !pm.EnableLongNumbers || !pm.DisableCountryCode || pm.DisableAutoFormat {
		t.Errorf("unexpected render flags: %+v", pm)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad int", key: "PHONEMASK_GUESS_CACHE_SIZE", value: "many"},
		{name: "negative cache size", key: "PHONEMASK_GUESS_CACHE_SIZE", value: "-1"},
		{name: "bad duration", key: "PHONEMASK_RESULT_CACHE_TTL", value: "soon"},
		{name: "bad bool", key: "PHONEMASK_ENABLE_LONG_NUMBERS", value: "maybe"},
		{name: "bad default country", key: "PHONEMASK_DEFAULT_COUNTRY", value: "TUR"},
		{name: "partial tls", key: "PHONEMASK_SERVICE_CERT_PATH", value: "/certs/server.crt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PHONEMASK_SERVICE_KEY_PATH", "")
			t.Setenv("GRPC_TLS_CA_PATH", "")
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("FromEnv() with %s=%q should fail", tt.key, tt.value)
			}
		})
	}
}
