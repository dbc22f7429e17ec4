package main

import (
	"log"

	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"giftcard-register-be/internal/config"
	"giftcard-register-be/internal/entity"
	"giftcard-register-be/internal/model"
	"giftcard-register-be/pkg/database"
)

// Seeds the two staff accounts. Idempotent: existing emails are left
// untouched.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedUser(db, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, "Studio Admin", entity.UserRoleAdmin)
	seedUser(db, cfg.Seed.SuperadminEmail, cfg.Seed.SuperadminPassword, "Studio Superadmin", entity.UserRoleSuperadmin)

	color.Green("Seeding complete.")
}

func seedUser(db *gorm.DB, email, password, fullName string, role entity.UserRole) {
	if password == "" {
		color.Yellow("Skipping %s: no password configured", email)
		return
	}

	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Fatalf("Error: failed to check existing user %s: %v", email, err)
	}
	if count > 0 {
		color.Yellow("Skipping %s: already exists", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: failed to hash password for %s: %v", email, err)
	}
	hashStr := string(hash)

	user := &model.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: &hashStr,
		Role:         string(role),
	}
	if err := db.Create(user).Error; err != nil {
		log.Fatalf("Error: failed to create user %s: %v", email, err)
	}

	color.Green("Created %s (%s)", email, role)
}
