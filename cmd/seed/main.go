// Command seed provisions the initial admin user from environment
// variables. Safe to re-run: an existing email is left untouched.
package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

func main() {
	cfg := config.Load()

	name := getenv("ADMIN_NAME", "Admin")
	email := getenv("ADMIN_EMAIL", "admin@localhost")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)

	if existing, err := users.FindByEmail(ctx, email); err == nil && existing != nil {
		log.Printf("admin %s already exists, nothing to do", email)
		return
	} else if err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("check admin: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admin := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("admin %s created", email)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
