package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

const (
	QuotaLockLocal = "local"
	QuotaLockRedis = "redis"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	TimeZone               string
	MaxPerQuadrant         int
	RateLimit              int
	QuotaLock              string
	RedisAddr              string
	RedisLockPrefix        string
	LockTTLSeconds         int
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		TimeZone:               getEnv("TIME_ZONE", "Asia/Tokyo"),
		MaxPerQuadrant:         getEnvAsInt("MAX_PER_QUADRANT", 10),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		QuotaLock:              getEnv("QUOTA_LOCK", QuotaLockLocal),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisLockPrefix:        getEnv("REDIS_LOCK_PREFIX", "task_quota_lock:"),
		LockTTLSeconds:         getEnvAsInt("LOCK_TTL_SECONDS", 5),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.TimeZone == "" {
		log.Fatal("TIME_ZONE must not be empty")
	}
	if cfg.MaxPerQuadrant <= 0 {
		log.Fatal("MAX_PER_QUADRANT must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.QuotaLock != QuotaLockLocal && cfg.QuotaLock != QuotaLockRedis {
		log.Fatal("QUOTA_LOCK must be either local or redis")
	}
	if cfg.LockTTLSeconds <= 0 {
		log.Fatal("LOCK_TTL_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
