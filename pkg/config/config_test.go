package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.AppEnv != "dev" || cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ShippingRatePerKg != 27.27 {
		t.Fatalf("expected default rate 27.27, got %v", cfg.ShippingRatePerKg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SHIPPING_RATE_PER_KG", "31.5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.ShippingRatePerKg != 31.5 {
		t.Fatalf("expected rate 31.5, got %v", cfg.ShippingRatePerKg)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected level debug, got %q", cfg.LogLevel)
	}
}

func TestLoadBadFloatFallsBack(t *testing.T) {
	t.Setenv("SHIPPING_RATE_PER_KG", "not-a-number")

	if cfg := Load(); cfg.ShippingRatePerKg != 27.27 {
		t.Fatalf("expected fallback rate 27.27, got %v", cfg.ShippingRatePerKg)
	}
}
