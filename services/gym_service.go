// services/gym_service.go - Gym lifecycle: creation, approval workflow, scoring
package services

import (
	"log"

	"fitarena/models"
	"fitarena/repositories"

	"gorm.io/gorm"
)

type GymService struct {
	gyms *repositories.GymRepository
}

func NewGymService(db *gorm.DB) *GymService {
	return &GymService{gyms: repositories.NewGymRepository(db)}
}

type GymInput struct {
	Name                string   `json:"name"`
	Contact             string   `json:"contact"`
	Description         string   `json:"description"`
	Address             string   `json:"address"`
	DetailedDescription string   `json:"detailed_description"`
	Facilities          []string `json:"facilities"`
	Equipment           []string `json:"equipment"`
	ActivityTypes       []string `json:"activity_types"`
}

// CreateGym registers a new gym in pending status. One gym per owner.
func (s *GymService) CreateGym(ownerID uint, input GymInput) (*models.Gym, error) {
	existing, err := s.gyms.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, Conflict("you already own a gym", "GYM_ALREADY_EXISTS")
	}

	gym := &models.Gym{
		OwnerID:             ownerID,
		Name:                input.Name,
		Contact:             input.Contact,
		Description:         input.Description,
		Address:             input.Address,
		DetailedDescription: input.DetailedDescription,
		Facilities:          input.Facilities,
		Equipment:           input.Equipment,
		ActivityTypes:       input.ActivityTypes,
		Status:              models.GymStatusPending,
	}
	if err := s.gyms.Create(gym); err != nil {
		return nil, err
	}
	log.Printf("✅ Gym %d created by user %d, awaiting approval", gym.ID, ownerID)
	return gym, nil
}

func (s *GymService) GetGym(id uint) (*models.Gym, error) {
	gym, err := s.gyms.FindByID(id)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		return nil, NotFound("gym not found", "GYM_NOT_FOUND")
	}
	return gym, nil
}

func (s *GymService) GetGymByOwner(ownerID uint) (*models.Gym, error) {
	gym, err := s.gyms.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		return nil, NotFound("gym not found", "GYM_NOT_FOUND")
	}
	return gym, nil
}

// ListApproved returns the public gym directory.
func (s *GymService) ListApproved() ([]models.Gym, error) {
	return s.gyms.FindByStatus(models.GymStatusApproved)
}

func (s *GymService) ListAll() ([]models.Gym, error) {
	return s.gyms.FindAll()
}

func (s *GymService) ListPending() ([]models.Gym, error) {
	return s.gyms.FindByStatus(models.GymStatusPending)
}

// UpdateGym lets the owner edit profile fields. Status is not touchable here.
func (s *GymService) UpdateGym(gymID, callerID uint, updates map[string]interface{}) (*models.Gym, error) {
	gym, err := s.GetGym(gymID)
	if err != nil {
		return nil, err
	}
	if gym.OwnerID != callerID {
		return nil, Forbidden("you do not own this gym", "GYM_UNAUTHORIZED")
	}
	delete(updates, "status")
	delete(updates, "owner_id")
	delete(updates, "total_score")
	return s.gyms.Update(gymID, updates)
}

// Approve moves a pending gym to approved. Terminal states are guarded.
func (s *GymService) Approve(gymID uint) (*models.Gym, error) {
	gym, err := s.GetGym(gymID)
	if err != nil {
		return nil, err
	}
	switch gym.Status {
	case models.GymStatusApproved:
		return nil, Conflict("gym is already approved", "GYM_ALREADY_APPROVED")
	case models.GymStatusRejected:
		return nil, Conflict("gym has been rejected", "GYM_ALREADY_REJECTED")
	}
	if err := s.gyms.UpdateStatus(gymID, models.GymStatusApproved); err != nil {
		return nil, err
	}
	log.Printf("✅ Gym %d approved", gymID)
	return s.GetGym(gymID)
}

// Reject moves a pending gym to rejected.
func (s *GymService) Reject(gymID uint) (*models.Gym, error) {
	gym, err := s.GetGym(gymID)
	if err != nil {
		return nil, err
	}
	switch gym.Status {
	case models.GymStatusApproved:
		return nil, Conflict("gym is already approved", "GYM_ALREADY_APPROVED")
	case models.GymStatusRejected:
		return nil, Conflict("gym has been rejected", "GYM_ALREADY_REJECTED")
	}
	if err := s.gyms.UpdateStatus(gymID, models.GymStatusRejected); err != nil {
		return nil, err
	}
	log.Printf("⚠️ Gym %d rejected", gymID)
	return s.GetGym(gymID)
}

func (s *GymService) DeleteGym(gymID uint) error {
	deleted, err := s.gyms.Delete(gymID)
	if err != nil {
		return err
	}
	if !deleted {
		return NotFound("gym not found", "GYM_NOT_FOUND")
	}
	return nil
}

// AddScore credits challenge points to the gym's running total.
func (s *GymService) AddScore(gymID uint, points int) error {
	return s.gyms.IncrementScore(gymID, points)
}
