package auth

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"abhm_backend/internals/configs"
	authModel "abhm_backend/internals/features/auth/model"
)

// EnsureDefaultAdmin creates the bootstrap admin from ADMIN_USERNAME and
// ADMIN_PASSWORD when the admins table is empty. Idempotent on restart.
func EnsureDefaultAdmin(db *gorm.DB) error {
	username := configs.GetEnv("ADMIN_USERNAME")
	password := configs.GetEnv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("⚠️ ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing authModel.AdminModel
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := db.Create(&authModel.AdminModel{Username: username, Password: string(hash)}).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded default admin %q", username)
	return nil
}
