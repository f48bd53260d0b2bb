package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"faq-chat-be/internal/entity"
	"faq-chat-be/internal/repository/specification"
	"faq-chat-be/internal/repository/unitofwork"
	"faq-chat-be/internal/service"
	"faq-chat-be/pkg/database"
	"faq-chat-be/pkg/faq"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	path := flag.String("file", "data/knowledge_base.yaml", "knowledge base document (json or yaml)")
	flag.Parse()

	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)

	log.Printf("Seeding knowledge base from %s...", *path)

	doc, err := faq.FileSource{Path: *path}.Fetch(ctx)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	count, err := service.NewRepositorySource(uowFactory).Import(ctx, doc)
	if err != nil {
		log.Fatalf("Error: Failed to import knowledge base: %v", err)
	}
	log.Printf("Imported %d FAQ entries", count)

	log.Println("Seeding admin user...")
	seedAdmin(ctx, uowFactory)

	log.Println("Seeding completed!")
}

// seedAdmin creates or updates the admin from ADMIN_EMAIL and ADMIN_PASSWORD.
func seedAdmin(ctx context.Context, uowFactory unitofwork.RepositoryFactory) {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash admin password: %v", err)
	}

	repo := uowFactory.NewUnitOfWork(ctx).AdminUserRepository()
	existing, err := repo.FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		log.Fatalf("Error: Failed to look up admin: %v", err)
	}

	if existing != nil {
		existing.PasswordHash = string(hash)
		if err := repo.Update(ctx, existing); err != nil {
			log.Fatalf("Error: Failed to update admin: %v", err)
		}
		log.Printf("Admin '%s' already exists, password updated", email)
		return
	}

	admin := &entity.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Administrator",
	}
	if err := repo.Create(ctx, admin); err != nil {
		log.Fatalf("Error: Failed to create admin: %v", err)
	}
	log.Printf("Created admin: %s", email)
}
