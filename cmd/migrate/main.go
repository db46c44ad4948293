// Command migrate applies the database schema and optionally seeds an
// admin account for the management endpoints.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/crypto/bcrypt"

	"github.com/michellealmonte/marketing-api/internal/config"
	"github.com/michellealmonte/marketing-api/internal/database"
	"github.com/michellealmonte/marketing-api/internal/entity"
	"github.com/michellealmonte/marketing-api/internal/repository"
)

func main() {
	adminUser := flag.String("admin-user", "", "seed an admin account with this username")
	adminEmail := flag.String("admin-email", "", "email for the seeded admin account")
	adminPass := flag.String("admin-pass", "", "password for the seeded admin account")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}
	log.Println("schema up to date")

	if *adminUser == "" {
		return
	}
	if *adminEmail == "" || *adminPass == "" {
		log.Fatal("seeding an admin requires -admin-email and -admin-pass")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*adminPass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admins := repository.NewPGXAdminUsersRepository(pool)
	admin, err := admins.Create(ctx, *adminUser, *adminEmail, string(hash), entity.RoleAdmin)
	if err != nil {
		if errors.Is(err, repository.ErrAdminDuplicate) {
			log.Printf("admin %q already exists, skipping", *adminUser)
			return
		}
		log.Fatalf("failed to create admin: %v", err)
	}
	log.Printf("created admin %q (id %d)", admin.Username, admin.ID)
}
