package services

import (
	"testing"

	"fitarena/models"

	"github.com/stretchr/testify/assert"
)

func TestChangeRole(t *testing.T) {
	defer clearDatabase()
	admin := createTestUser(t, "admin@example.com", models.RoleAdmin)
	user := createTestUser(t, "user@example.com", models.RoleUser)
	svc := NewUserService(testDb)

	updated, err := svc.ChangeRole(user.ID, admin.ID, models.RoleGymOwner)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleGymOwner, updated.Role)

	_, err = svc.ChangeRole(user.ID, admin.ID, "superhero")
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "INVALID_ROLE", svcErr.Code)
}

func TestChangeRoleSelfGuard(t *testing.T) {
	defer clearDatabase()
	admin := createTestUser(t, "admin@example.com", models.RoleAdmin)

	_, err := NewUserService(testDb).ChangeRole(admin.ID, admin.ID, models.RoleUser)
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "FORBIDDEN", svcErr.Code)
}

func TestSetActive(t *testing.T) {
	defer clearDatabase()
	admin := createTestUser(t, "admin@example.com", models.RoleAdmin)
	user := createTestUser(t, "user@example.com", models.RoleUser)
	svc := NewUserService(testDb)

	updated, err := svc.SetActive(user.ID, admin.ID, false)
	assert.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = svc.SetActive(admin.ID, admin.ID, false)
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "FORBIDDEN", svcErr.Code)
}

func TestDeleteUser(t *testing.T) {
	defer clearDatabase()
	admin := createTestUser(t, "admin@example.com", models.RoleAdmin)
	user := createTestUser(t, "user@example.com", models.RoleUser)
	svc := NewUserService(testDb)

	assert.NoError(t, svc.DeleteUser(user.ID, admin.ID))

	var svcErr *ServiceError
	err := svc.DeleteUser(user.ID, admin.ID)
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "USER_NOT_FOUND", svcErr.Code)

	err = svc.DeleteUser(admin.ID, admin.ID)
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "FORBIDDEN", svcErr.Code)
}
