// services/user_service.go - Admin user management
package services

import (
	"log"

	"fitarena/models"
	"fitarena/repositories"

	"gorm.io/gorm"
)

type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{users: repositories.NewUserRepository(db)}
}

func (s *UserService) GetUser(id uint) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("user not found", "USER_NOT_FOUND")
	}
	return user, nil
}

func (s *UserService) ListUsers(filter repositories.UserFilter) ([]models.User, error) {
	return s.users.FindMany(filter)
}

// ChangeRole updates a user's role. Admins cannot demote themselves.
func (s *UserService) ChangeRole(targetID, callerID uint, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, BadRequest("invalid role", "INVALID_ROLE")
	}
	if targetID == callerID {
		return nil, Forbidden("you cannot change your own role", "FORBIDDEN")
	}
	if _, err := s.GetUser(targetID); err != nil {
		return nil, err
	}
	user, err := s.users.Update(targetID, map[string]interface{}{"role": role})
	if err != nil {
		return nil, err
	}
	log.Printf("🔄 User %d role changed to %s by admin %d", targetID, role, callerID)
	return user, nil
}

func (s *UserService) SetActive(targetID, callerID uint, active bool) (*models.User, error) {
	if targetID == callerID {
		return nil, Forbidden("you cannot change your own account state", "FORBIDDEN")
	}
	if _, err := s.GetUser(targetID); err != nil {
		return nil, err
	}
	return s.users.Update(targetID, map[string]interface{}{"is_active": active})
}

func (s *UserService) DeleteUser(targetID, callerID uint) error {
	if targetID == callerID {
		return Forbidden("you cannot delete your own account", "FORBIDDEN")
	}
	deleted, err := s.users.Delete(targetID)
	if err != nil {
		return err
	}
	if !deleted {
		return NotFound("user not found", "USER_NOT_FOUND")
	}
	log.Printf("⚠️ User %d deleted by admin %d", targetID, callerID)
	return nil
}
