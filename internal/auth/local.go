package auth

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gojira/gojira/internal/db/models"
)

// LocalProvider handles local database authentication.
type LocalProvider struct {
	db *gorm.DB
}

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{
		db: db,
	}
}

// Authenticate authenticates a user against the local database and records
// the login time.
func (p *LocalProvider) Authenticate(username, password string) (*models.User, error) {
	var user models.User

	err := p.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !user.Active {
		return nil, ErrUserAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidPassword
	}

	now := time.Now()
	user.LastLoginAt = &now

	if err = p.db.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return &user, nil
}

// CreateUser creates a new active local user.
func (p *LocalProvider) CreateUser(username, email, password string, staff bool) (*models.User, error) {
	var existingUser models.User

	err := p.db.Where("username = ? OR email = ?", username, email).First(&existingUser).Error
	if err == nil {
		return nil, ErrUserNameOrEmailExists
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	user := models.User{
		Active:   true,
		Username: username,
		Email:    email,
		Password: models.HashPassword(password),
		Staff:    staff,
	}

	if err := p.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (p *LocalProvider) updateFlag(userID uint64, column string, value bool) error {
	user, err := p.GetUserByID(userID)
	if err != nil {
		return err
	}

	if err = p.db.Model(user).Update(column, value).Error; err != nil {
		return fmt.Errorf("failed to update %s: %w", column, err)
	}

	return nil
}

// SetStaff grants or revokes staff access.
func (p *LocalProvider) SetStaff(userID uint64, staff bool) error {
	return p.updateFlag(userID, "staff", staff)
}

// SetPremium sets the premium flag copied into the session on login.
func (p *LocalProvider) SetPremium(userID uint64, premium bool) error {
	return p.updateFlag(userID, "premium", premium)
}

// SetActive activates or deactivates an account.
func (p *LocalProvider) SetActive(userID uint64, active bool) error {
	return p.updateFlag(userID, "active", active)
}

// GetUserByID retrieves a user by ID.
func (p *LocalProvider) GetUserByID(userID uint64) (*models.User, error) {
	var user models.User

	err := p.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListUsers lists users ordered by username.
func (p *LocalProvider) ListUsers(limit, offset int) ([]models.User, int64, error) {
	var (
		users []models.User
		total int64
		query = p.db.Model(&models.User{})
	)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("username").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// CountUsers returns the number of accounts.
func (p *LocalProvider) CountUsers() (int64, error) {
	var total int64

	err := p.db.Model(&models.User{}).Count(&total).Error

	return total, err
}
