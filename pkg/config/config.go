package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv    string
	LogLevel  string
	LogFormat string

	// ShippingRatePerKg is the flat carrier rate applied to the total
	// package weight at checkout.
	ShippingRatePerKg float64
}

func Load() Config {
	return Config{
		AppEnv:            getEnv("APP_ENV", "dev"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		ShippingRatePerKg: getEnvFloat("SHIPPING_RATE_PER_KG", 27.27),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}

	return f
}
