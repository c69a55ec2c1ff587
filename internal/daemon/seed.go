package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gojira/gojira/internal/auth"
	"github.com/gojira/gojira/internal/db/models"
)

const (
	seedAdminUser     = "admin"
	seedAdminEmail    = "admin@localhost"
	seedAdminPassword = "changeme"
)

// seed creates a staff admin account if the user table is empty.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	if _, err := auth.NewLocalProvider(db).CreateUser(seedAdminUser, seedAdminEmail, seedAdminPassword, true); err != nil {
		return err
	}

	log.Warn().Str("username", seedAdminUser).Msg("created default admin user, change its password")

	return nil
}
