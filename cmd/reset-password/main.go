package main

import (
	"context"
	"flag"
	"log"

	"go-product-catalog/config"
	"go-product-catalog/internal/repository"
	"go-product-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "", "admin account email (defaults to ADMIN_EMAIL)")
	password := flag.String("password", "", "new password (defaults to ADMIN_PASSWORD)")
	flag.Parse()

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.LoadEnv()
	if *email == "" {
		*email = cfg.Admin.Email
	}
	if *password == "" {
		*password = cfg.Admin.Password
	}

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Postgres)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	ctx := context.Background()
	users := repository.NewUserRepo(db)

	// 3. Find Admin
	user, err := users.FindByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("❌ User %s not found in database: %v", *email, err)
	}

	// 4. Hash new password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	// 5. Update, signing out existing sessions
	if err := users.UpdatePassword(ctx, user.ID, string(hashedPassword)); err != nil {
		log.Fatalf("❌ Failed to update password in DB: %v", err)
	}
	if err := users.UpdateTokenVersion(ctx, user.ID, uuid.New().String()); err != nil {
		log.Fatalf("❌ Failed to reset sessions: %v", err)
	}

	log.Printf("✅ Success! Password for %s has been reset", *email)
}
