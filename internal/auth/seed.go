package auth

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/models"
)

// SeedDemoUsers creates a set of well-known users for demo setups.
//
// It does nothing when any user already exists.
func SeedDemoUsers(db *gorm.DB) error {
	var count int64
	err := db.Model(&models.User{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	samples := []struct {
		email    string
		password string
		role     models.Role
	}{
		{"admin@example.com", "admin123", models.RoleAdmin},
		{"cm@example.com", "cm123", models.RoleClientMgmt},
		{"salary@example.com", "salary123", models.RoleSalary},
		{"self@example.com", "self123", models.RoleSelfEmployed},
		{"acct@example.com", "acct123", models.RoleAccountant},
	}

	for _, sample := range samples {
		hash, err := HashPassword(sample.password)
		if err != nil {
			return err
		}

		err = db.Create(&models.User{
			Email:        sample.email,
			PasswordHash: hash,
			Role:         sample.role,
		}).Error
		if err != nil {
			return err
		}
	}

	log.Info().Int("users", len(samples)).Msg("seeded demo users")

	return nil
}
