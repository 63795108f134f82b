package services

import (
	"errors"
	"strings"
	"time"

	"gyanpod-api/models"

	"gorm.io/gorm"
)

// UserService covers admin account management: listing accounts and flipping
// their active/suspended state.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns accounts, newest first. A roleID of zero means any role; an
// empty status means any status.
func (s *UserService) List(roleID int, status string) ([]models.User, error) {
	q := s.db.Preload("Role").Where("delete_at IS NULL").Order("create_at DESC")
	if roleID > 0 {
		q = q.Where("role_id = ?", roleID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, persistenceErr("list users", err)
	}
	return users, nil
}

// SetStatus activates or suspends an account. Admins cannot change their own
// account, so at least one active admin always remains.
func (s *UserService) SetStatus(userID, actorID int, status string) (*models.User, error) {
	status = strings.TrimSpace(status)
	if status != models.UserStatusActive && status != models.UserStatusSuspended {
		return nil, newValidationError("status", "status must be active or suspended")
	}
	if userID == actorID {
		return nil, newValidationError("user_id", "cannot change your own account status")
	}

	var user models.User
	err := s.db.Where("user_id = ? AND delete_at IS NULL", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistenceErr("load user", err)
	}

	now := time.Now()
	res := s.db.Model(&models.User{}).
		Where("user_id = ? AND delete_at IS NULL", userID).
		Updates(map[string]interface{}{"status": status, "update_at": now})
	if res.Error != nil {
		return nil, persistenceErr("update user status", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	user.Status = status
	user.UpdateAt = &now
	return &user, nil
}
