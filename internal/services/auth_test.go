package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saurabhtbj1201/portfolio/backend/internal/config"
	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"github.com/saurabhtbj1201/portfolio/backend/internal/utils"
)

func newAuthService(t *testing.T) (*AuthService, *models.User) {
	t.Helper()
	utils.SetJWTSecret("test-secret")

	db := newTestDB(t)
	svc := NewAuthService(db, &config.JWTConfig{Secret: "test-secret", ExpireHour: 24})

	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	user := &models.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: hash,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)

	return svc, user
}

func TestLoginSuccess(t *testing.T) {
	svc, user := newAuthService(t)

	resp, err := svc.Login(&LoginRequest{Email: "admin@example.com", Password: "correct-horse"}, "127.0.0.1")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := utils.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	// Login stamps last_login.
	stored, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(&LoginRequest{Email: "admin@example.com", Password: "wrong"}, "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "whatever"}, "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	db := newTestDB(t)
	utils.SetJWTSecret("test-secret")
	svc := NewAuthService(db, &config.JWTConfig{Secret: "test-secret", ExpireHour: 24})

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Email:    "frozen@example.com",
		Password: hash,
		Role:     models.RoleEditor,
		IsActive: false,
	}).Error)

	_, err = svc.Login(&LoginRequest{Email: "frozen@example.com", Password: "secret123"}, "127.0.0.1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	svc, user := newAuthService(t)

	assert.Error(t, svc.ChangePassword(user.ID, "wrong", "new-password-1"))

	_, short := AsValidationError(svc.ChangePassword(user.ID, "correct-horse", "short"))
	assert.True(t, short)

	require.NoError(t, svc.ChangePassword(user.ID, "correct-horse", "new-password-1"))

	_, err := svc.Login(&LoginRequest{Email: "admin@example.com", Password: "new-password-1"}, "127.0.0.1")
	assert.NoError(t, err)
}

func TestCreateAdminIfNotExists(t *testing.T) {
	db := newTestDB(t)
	utils.SetJWTSecret("test-secret")
	svc := NewAuthService(db, &config.JWTConfig{Secret: "test-secret", ExpireHour: 24})

	require.NoError(t, svc.CreateAdminIfNotExists())

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Idempotent once an admin exists.
	require.NoError(t, svc.CreateAdminIfNotExists())
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
