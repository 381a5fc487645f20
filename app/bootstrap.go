// app/bootstrap.go
package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"

	"github.com/SharadaShehan/IMS-Backend-sub000/db"
	"github.com/SharadaShehan/IMS-Backend-sub000/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// BootstrapFirstAdmin creates a SystemAdmin account from BOOTSTRAP_ADMIN_EMAIL
// on first startup, with a one-time generated password printed to the log.
func BootstrapFirstAdmin(ctx context.Context, cfg Config, repo *db.Repo) {
	if cfg.BootstrapEmail == "" {
		return
	}
	if _, err := repo.FindUserByEmail(ctx, cfg.BootstrapEmail); err == nil {
		return
	}

	buf := make([]byte, 12)
	rand.Read(buf)
	password := hex.EncodeToString(buf)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("bootstrap admin failed: %v", err)
		return
	}
	u := &models.User{
		ID:           uuid.NewString(),
		Email:        cfg.BootstrapEmail,
		DisplayName:  "System Admin",
		PasswordHash: string(hash),
		Role:         models.RoleSystemAdmin,
		IsActive:     true,
	}
	if err := repo.CreateUser(ctx, u); err != nil {
		log.Printf("bootstrap admin failed: %v", err)
		return
	}

	log.Printf("[BOOTSTRAP] Created admin account %s", cfg.BootstrapEmail)
	log.Printf("[BOOTSTRAP] One-time password: %s", password)
}
