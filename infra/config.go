package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	SessionStoreDB     = "db"
	SessionStoreCookie = "cookie"
)

// Config は環境変数から読み込むアプリケーション設定
type Config struct {
	// サーバー設定
	Port    string
	GinMode string
	Env     string

	// データベース設定（DB_NAME未設定の場合はSQLiteのインメモリ）
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// 認証設定
	SecretKey     string
	TokenTTL      time.Duration
	SessionSecret string
	SessionStore  string
	SessionDBPath string
	SessionMaxAge time.Duration

	AutoMigrate bool
	SeedData    bool

	CORSAllowedOrigins []string
}

// Load は .env と環境変数から設定を読み込む
func Load() (*Config, error) {
	Initialize()

	cfg := &Config{
		Port:    getEnv("PORT", getEnv("AWS_LWA_PORT", "8080")),
		GinMode: getEnv("GIN_MODE", "debug"),
		Env:     getEnv("ENV", "dev"),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getEnv("DB_PORT", "5432"),

		SecretKey:     os.Getenv("SECRET_KEY"),
		TokenTTL:      getEnvAsDuration("TOKEN_TTL", time.Hour),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionStore:  strings.ToLower(getEnv("SESSION_STORE", SessionStoreDB)),
		SessionDBPath: getEnv("SESSION_DB_PATH", "sessions.db"),
		SessionMaxAge: getEnvAsDuration("SESSION_MAX_AGE", 12*time.Hour),

		AutoMigrate: getEnvAsBool("AUTO_MIGRATE", false),
		SeedData:    getEnvAsBool("SEED_DATA", false),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.SessionStore != SessionStoreDB && c.SessionStore != SessionStoreCookie {
		return fmt.Errorf("SESSION_STORE must be %q or %q, got %q", SessionStoreDB, SessionStoreCookie, c.SessionStore)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	// ローカル開発では秘密鍵は任意、本番では必須
	if c.GinMode == "release" || c.Env == "prod" {
		if c.SecretKey == "" {
			return fmt.Errorf("SECRET_KEY is required in release mode")
		}
		if c.SessionSecret == "" {
			return fmt.Errorf("SESSION_SECRET is required in release mode")
		}
	}
	return nil
}

// IsRelease は本番向けの設定かどうかを返す
func (c *Config) IsRelease() bool {
	return c.GinMode == "release" || c.Env == "prod"
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration は "1h" 形式と秒数の両方を受け付ける
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
