package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート

	JWTSecret string // JWT署名シークレット

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）

	CatalogAPIURL string // 商品カタログAPIのベースURL
	ProfileAPIURL string // 購入者プロフィールAPIのベースURL
	OrderAPIURL   string // 注文作成APIのベースURL

	UpstreamTimeout time.Duration // 外部APIのHTTPタイムアウト

	RedisAddr       string        // Redisアドレス（host:port）
	RedisPassword   string        // Redisパスワード（無ければ空）
	CatalogCacheTTL time.Duration // カタログキャッシュのTTL
}

// Loadは環境変数から読み込む
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		GoEnv: os.Getenv("GO_ENV"),
		FEURL: os.Getenv("FE_URL"),

		CatalogAPIURL: os.Getenv("CATALOG_API_URL"),
		ProfileAPIURL: os.Getenv("PROFILE_API_URL"),
		OrderAPIURL:   os.Getenv("ORDER_API_URL"),

		UpstreamTimeout: secondsEnv("UPSTREAM_TIMEOUT", 30),

		RedisAddr:       getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		CatalogCacheTTL: secondsEnv("CATALOG_CACHE_TTL", 300),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.FEURL == "" {
		return Config{}, fmt.Errorf("FE_URL is required")
	}
	if cfg.CatalogAPIURL == "" {
		return Config{}, fmt.Errorf("CATALOG_API_URL is required")
	}
	if cfg.ProfileAPIURL == "" {
		return Config{}, fmt.Errorf("PROFILE_API_URL is required")
	}
	if cfg.OrderAPIURL == "" {
		return Config{}, fmt.Errorf("ORDER_API_URL is required")
	}

	return cfg, nil
}

func getenvDefault(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func secondsEnv(key string, defSeconds int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(defSeconds) * time.Second
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		return time.Duration(defSeconds) * time.Second
	}
	return time.Duration(i) * time.Second
}
