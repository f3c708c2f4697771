package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/Lucas-Aron/Retail/internal/config_lib"
)

func LoadSecretManager(ctx context.Context, secretID, region string) (*SecretApp, error) {
	log.Printf("config_lib ID %s", secretID)

	sm, err := config_lib.New(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("crear secrets manager: %w", err)
	}

	raw, err := sm.GetSecretString(ctx, secretID, "AWSCURRENT")
	if err != nil {
		return nil, fmt.Errorf("obtener secreto: %w", err)
	}

	return ParseSecret(raw)
}

func ParseSecret(raw string) (*SecretApp, error) {
	var cfg SecretApp
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("parsear secreto JSON: %w", err)
	}
	return &cfg, nil
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No se encontró archivo .env: %v", err)
	}
}
