package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr       string
	GinMode       string
	DBUser        string
	DBPassword    string
	DBHost        string
	DBName        string
	JWTSecret     string
	CORSOrigins   []string
	RunMigrations bool
}

// LoadEnv reads configuration from the environment, honoring a local .env
// file when present (development convenience, never required).
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		AppAddr:       getEnv("APP_ADDR", ":8080"),
		GinMode:       getEnv("GIN_MODE", ""),
		DBUser:        getEnv("DB_USER", "root"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBHost:        getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName:        getEnv("DB_NAME", "sisgad5"),
		JWTSecret:     getEnv("JWT_SECRET", "sisgad-dev-secret-cambiar"),
		RunMigrations: getEnv("RUN_MIGRATIONS", "true") == "true",
	}

	origins := getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			env.CORSOrigins = append(env.CORSOrigins, o)
		}
	}

	return env
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
