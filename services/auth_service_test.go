package services

import (
	"testing"

	"fitarena/models"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	defer clearDatabase()
	svc := NewAuthService(testDb)

	result, err := svc.Register("Jane Runner", "jane@example.com", "supersecret", "")
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, models.RoleUser, result.User.Role)
	assert.Equal(t, 1, result.User.Level)
	assert.NotEqual(t, "supersecret", result.User.Password)

	login, err := svc.Login("jane@example.com", "supersecret")
	assert.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	defer clearDatabase()
	svc := NewAuthService(testDb)

	_, err := svc.Register("Jane Runner", "jane@example.com", "supersecret", "")
	assert.NoError(t, err)

	_, err = svc.Register("Other Jane", "jane@example.com", "differentpw", "")
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "EMAIL_EXISTS", svcErr.Code)
}

func TestRegisterInvalidRole(t *testing.T) {
	defer clearDatabase()

	_, err := NewAuthService(testDb).Register("Jane Runner", "jane@example.com", "supersecret", "wizard")
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "INVALID_ROLE", svcErr.Code)
}

func TestLoginFailures(t *testing.T) {
	defer clearDatabase()
	svc := NewAuthService(testDb)

	_, err := svc.Register("Jane Runner", "jane@example.com", "supersecret", "")
	assert.NoError(t, err)

	var svcErr *ServiceError
	_, err = svc.Login("jane@example.com", "wrongpassword")
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "INVALID_CREDENTIALS", svcErr.Code)

	_, err = svc.Login("nobody@example.com", "supersecret")
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "INVALID_CREDENTIALS", svcErr.Code)
}

func TestLoginDisabledAccount(t *testing.T) {
	defer clearDatabase()
	svc := NewAuthService(testDb)

	result, err := svc.Register("Jane Runner", "jane@example.com", "supersecret", "")
	assert.NoError(t, err)

	err = testDb.Model(&models.User{}).Where("id = ?", result.User.ID).
		Update("is_active", false).Error
	assert.NoError(t, err)

	var svcErr *ServiceError
	_, err = svc.Login("jane@example.com", "supersecret")
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "ACCOUNT_DISABLED", svcErr.Code)
}
