// repositories/gym_repository.go
package repositories

import (
	"errors"

	"fitarena/models"

	"gorm.io/gorm"
)

type GymRepository struct {
	db *gorm.DB
}

func NewGymRepository(db *gorm.DB) *GymRepository {
	return &GymRepository{db: db}
}

func (r *GymRepository) Create(gym *models.Gym) error {
	return r.db.Create(gym).Error
}

func (r *GymRepository) FindByID(id uint) (*models.Gym, error) {
	var gym models.Gym
	if err := r.db.First(&gym, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gym, nil
}

func (r *GymRepository) FindByOwner(ownerID uint) (*models.Gym, error) {
	var gym models.Gym
	if err := r.db.Where("owner_id = ?", ownerID).First(&gym).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gym, nil
}

func (r *GymRepository) FindByStatus(status string) ([]models.Gym, error) {
	var gyms []models.Gym
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&gyms).Error
	return gyms, err
}

func (r *GymRepository) FindAll() ([]models.Gym, error) {
	var gyms []models.Gym
	err := r.db.Order("created_at DESC").Find(&gyms).Error
	return gyms, err
}

func (r *GymRepository) Update(id uint, updates map[string]interface{}) (*models.Gym, error) {
	result := r.db.Model(&models.Gym{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *GymRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Gym{}).Where("id = ?", id).Update("status", status).Error
}

// IncrementScore accumulates completed-challenge points on the gym counter.
func (r *GymRepository) IncrementScore(id uint, points int) error {
	return r.db.Model(&models.Gym{}).Where("id = ?", id).
		Update("total_score", gorm.Expr("total_score + ?", points)).Error
}

func (r *GymRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Gym{}, id)
	return result.RowsAffected > 0, result.Error
}
