package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisURL string

	MeiliSearchHost string
	MeiliMasterKey  string

	JWTSecret string
	JWTTTL    time.Duration

	BcryptCost int

	StorageDriver string
	UploadDir     string

	RateLimitPublication time.Duration

	// RelationDecoration controls whose relation sets decorate the
	// following/followed listings: "caller" reproduces the source
	// behavior, "subject" uses the user whose follows are listed.
	RelationDecoration string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASS"),
		DBName:     getEnv("DB_NAME", "redsocial"),
		DBPort:     getEnv("DB_PORT", "5432"),

		RedisURL: os.Getenv("REDIS_URL"),

		MeiliSearchHost: os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),

		StorageDriver: getEnv("STORAGE_DRIVER", "local"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),

		RelationDecoration: getEnv("RELATION_DECORATION", "caller"),
	}

	var err error
	cfg.JWTTTL, err = time.ParseDuration(getEnv("JWT_TTL", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.RateLimitPublication, err = time.ParseDuration(getEnv("RATE_LIMIT_PUBLICATION", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PUBLICATION: %w", err)
	}

	cost := getEnv("BCRYPT_COST", "10")
	if _, err := fmt.Sscanf(cost, "%d", &cfg.BcryptCost); err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	if cfg.RelationDecoration != "caller" && cfg.RelationDecoration != "subject" {
		return nil, fmt.Errorf("invalid RELATION_DECORATION: %q", cfg.RelationDecoration)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
