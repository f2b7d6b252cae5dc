package config

import (
	"time"

	"photoshare-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// Config is read once at startup and injected into the services and
// middleware that need it. Business code never reads the environment.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	UploadDir   string
	BaseURL     string
	Port        string
}

// Load builds the configuration from the environment. DATABASE_URL wins;
// otherwise the DSN is assembled from the individual POSTGRES_* variables.
func Load() Config {
	connString := utils.GetEnv("DATABASE_URL", "")
	if connString == "" {
		connString = "postgres://" + utils.GetEnv("POSTGRES_USER", "postgres") + ":" +
			utils.GetEnv("POSTGRES_PASSWORD", "postgres") + "@" +
			utils.GetEnv("POSTGRES_HOST", "localhost") + ":" +
			utils.GetEnv("POSTGRES_PORT", "5432") + "/" +
			utils.GetEnv("POSTGRES_DB", "photosharedb") + "?sslmode=disable"
	}

	return Config{
		DatabaseURL: connString,
		JWTSecret:   utils.GetEnv("JWT_SECRET", "secret"),
		TokenTTL:    7 * 24 * time.Hour,
		BcryptCost:  utils.GetEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		UploadDir:   utils.GetEnv("UPLOAD_DIR", "uploads"),
		BaseURL:     utils.GetEnv("BASE_URL", ""),
		Port:        utils.GetEnv("PORT", "3001"),
	}
}
