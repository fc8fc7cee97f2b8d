package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/config"
	pginfra "github.com/soujunior/vagas-api/internal/infrastructure/postgres"
	"github.com/soujunior/vagas-api/pkg/helpers"
)

// Seeds a confirmed admin user and a confirmed company for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, time.Minute)
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	const password = "Admin@123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		logger.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password, type, mail_confirm, policies)
		VALUES ($1, $2, $3, 'ADMIN', TRUE, TRUE)
		ON CONFLICT (lower(email)) DO UPDATE SET type = 'ADMIN', mail_confirm = TRUE, updated_at = now()
		RETURNING id
	`, "Admin", "admin@soujunior.tech", hash).Scan(&userID)
	if err != nil {
		logger.Fatalf("failed to seed admin: %v", err)
	}
	logger.WithFields(logrus.Fields{"id": userID, "email": "admin@soujunior.tech", "password": password}).Info("seeded admin user")

	var companyID string
	err = pool.QueryRow(ctx, `
		INSERT INTO companies (company_name, email, password, cnpj, mail_confirm, policies)
		VALUES ($1, $2, $3, $4, TRUE, TRUE)
		ON CONFLICT (cnpj) DO UPDATE SET mail_confirm = TRUE, updated_at = now()
		RETURNING id
	`, "Empresa Demo", "empresa@soujunior.tech", hash, "11222333000181").Scan(&companyID)
	if err != nil {
		logger.Fatalf("failed to seed company: %v", err)
	}
	logger.WithFields(logrus.Fields{"id": companyID, "email": "empresa@soujunior.tech", "password": password}).Info("seeded company")
}
