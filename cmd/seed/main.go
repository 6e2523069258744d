// Seed bootstraps the admin role and an initial admin user. Safe to run
// repeatedly.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/lmhoang06/waiedu-task-management/config"
	"github.com/lmhoang06/waiedu-task-management/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := getenv("SEED_ADMIN_USERNAME", "admin")
	email := getenv("SEED_ADMIN_EMAIL", "admin@example.com")
	password := getenv("SEED_ADMIN_PASSWORD", "changeme-now1")
	fullName := getenv("SEED_ADMIN_FULL_NAME", "Administrator")

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var adminRoleID int64
	if err := db.QueryRow(`
		INSERT INTO roles (name, description, permissions)
		VALUES ('admin', 'Full administrative access', 'all')
		ON CONFLICT (name) DO UPDATE SET updated_at = now()
		RETURNING id
	`).Scan(&adminRoleID); err != nil {
		log.Fatalf("failed to upsert admin role: %v", err)
	}

	var memberRoleID int64
	if err := db.QueryRow(`
		INSERT INTO roles (name, description, permissions)
		VALUES ('member', 'Regular member', '')
		ON CONFLICT (name) DO UPDATE SET updated_at = now()
		RETURNING id
	`).Scan(&memberRoleID); err != nil {
		log.Fatalf("failed to upsert member role: %v", err)
	}
	fmt.Printf("roles ensured: admin=%d member=%d\n", adminRoleID, memberRoleID)

	var userID int64
	if err := db.QueryRow(`
		INSERT INTO users (username, password, email, full_name, role_id, status)
		VALUES ($1, $2, $3, $4, $5, 'active')
		ON CONFLICT (username) DO UPDATE SET role_id = EXCLUDED.role_id, updated_at = now()
		RETURNING id
	`, username, hash, email, fullName, adminRoleID).Scan(&userID); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	fmt.Printf("seeded admin user: id=%d username=%s email=%s\n", userID, username, email)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
