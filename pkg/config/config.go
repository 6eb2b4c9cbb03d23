package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	CatalogPath string

	ShopName  string
	ShopPhone string
	ShopHours string
}

func Load() Config {
	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		CatalogPath: getEnv("CATALOG_PATH", "catalog.yaml"),
		ShopName:    getEnv("SHOP_NAME", "MIAMORE SHOP"),
		ShopPhone:   getEnv("SHOP_PHONE", "+7 950 524 46 76"),
		ShopHours:   getEnv("SHOP_HOURS", "10:00-22:00 MSK"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
