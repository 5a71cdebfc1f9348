package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr          string
	FixturePath   string
	TargetAccount string
	AdminSecret   string
	ProxyBase     string
	ProxyTimeout  time.Duration
	Version       string
}

func Load() Config {
	addr := envString("MOCKSOCIAL_ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}
	return Config{
		Addr:          addr,
		FixturePath:   envString("MOCKSOCIAL_FIXTURE", ""),
		TargetAccount: envString("MOCKSOCIAL_TARGET", "andrealbriziom"),
		AdminSecret:   envString("MOCKSOCIAL_ADMIN_SECRET", "dev-admin-secret"),
		ProxyBase:     envString("MOCKSOCIAL_PROXY_BASE", "http://arntreal.upstar.club:2001"),
		ProxyTimeout:  envDuration("MOCKSOCIAL_PROXY_TIMEOUT", 60*time.Second),
		Version:       envString("MOCKSOCIAL_VERSION", "dev"),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return def
}
