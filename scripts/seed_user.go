package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/savconnect/savconnect-api/pkg/auth"
)

func main() {
	fmt.Println("adding seed user into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	seedEmail := os.Getenv("SEED_EMAIL")
	seedName := os.Getenv("SEED_NAME")
	seedPassword := os.Getenv("SEED_PASSWORD")

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO users (id, email, name, avatar, password_hash, created_at)
		VALUES ($1, $2, $3, '', $4, $5)
		ON CONFLICT (email) DO UPDATE SET password_hash = $4
	`
	_, err = pool.Exec(context.Background(), query, uuid.New(), seedEmail, seedName, hash, time.Now().UTC())
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	fmt.Printf("added or updated user '%s' successfully!\n", seedEmail)
}
