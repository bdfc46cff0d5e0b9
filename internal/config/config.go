package config

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort       string
	DatabaseDSN    string
	JWTSecret      string
	CORSOrigins    string
	AdminUsername  string        // Tek kullanıcılı giriş: kullanıcı adı
	AdminPassword  string        // Tek kullanıcılı giriş: parola
	SessionTimeout time.Duration // Oturum süresi (mutlak, uzatma yok)
	SyncDelay      time.Duration // Sync kuyruğu: kayıt başına simüle gecikme
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=kartela port=5432 sslmode=disable"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		CORSOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "ORMEN"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "ORMEN666-F1"),
		SessionTimeout: time.Duration(getEnvInt("SESSION_TIMEOUT_MINUTES", 30)) * time.Minute,
		SyncDelay:      time.Duration(getEnvInt("SYNC_DELAY_MS", 100)) * time.Millisecond,
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		logrus.Fatal("JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.AdminPassword == "ORMEN666-F1" {
		logrus.Warn("ADMIN_PASSWORD varsayılan değer kullanılıyor, production için mutlaka kendi parolanı tanımla.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		logrus.Warn("CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		logrus.Warnf("%s sayı değil, varsayılan %d kullanılıyor", key, def)
	}
	return def
}
