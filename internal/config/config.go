// Configuración de la aplicación
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Lucas-Aron/Retail/internal/utils"
)

const DefaultDBPath = "store_management.db"

type Config struct {
	Addr     string
	IDPolicy string
	SecretID string
	Region   string
	DB       DBConfig
	S3       S3Config
}

// Load reads the environment (.env included) and, when APP_SECRET_ID is set,
// overlays database credentials from AWS Secrets Manager.
func Load(ctx context.Context) (Config, error) {
	port, err := utils.ConverToint(getEnv("DB_PORT", "5432"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Addr:     getEnv("ADDR", ":8080"),
		IDPolicy: getEnv("ID_POLICY", "timestamp"),
		SecretID: getEnv("APP_SECRET_ID", ""),
		Region:   getEnv("AWS_REGION", "us-east-2"),
		DB: DBConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Path:     getEnv("DB_PATH", DefaultDBPath),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "store_management"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		S3: S3Config{
			Region: getEnv("AWS_REGION", "us-east-2"),
			Bucket: getEnv("BACKUP_BUCKET", ""),
		},
	}

	if cfg.SecretID != "" {
		secret, err := LoadSecretManager(ctx, cfg.SecretID, cfg.Region)
		if err != nil {
			return Config{}, err
		}
		secret.ApplyTo(&cfg)
	}

	if cfg.DB.Driver != DriverSQLite && cfg.DB.Driver != DriverPostgres {
		return Config{}, fmt.Errorf("DB_DRIVER %q no soportado", cfg.DB.Driver)
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
