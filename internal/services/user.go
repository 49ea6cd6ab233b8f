package services

import (
	"errors"

	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"github.com/saurabhtbj1201/portfolio/backend/internal/utils"
	"gorm.io/gorm"
)

// UserService manages admin accounts (the back-office "Admins" screen).
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin editor"`
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role" binding:"omitempty,oneof=admin editor"`
	IsActive *bool  `json:"is_active"`
}

// List returns all admin accounts, newest first.
func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create adds a new admin account.
func (s *UserService) Create(req *CreateUserRequest) (*models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleEditor
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     role,
		IsActive: true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Update edits name, role or active flag.
func (s *UserService) Update(id string, req *UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Delete removes an admin account. The last remaining admin cannot be
// deleted, otherwise the back-office would lock itself out.
func (s *UserService) Delete(id string) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if user.Role == models.RoleAdmin {
		var admins int64
		s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins)
		if admins <= 1 {
			return errors.New("cannot delete the last admin account")
		}
	}

	return s.db.Delete(&user).Error
}
