// repositories/participation_repository.go
package repositories

import (
	"errors"

	"fitarena/models"

	"gorm.io/gorm"
)

type ParticipationRepository struct {
	db *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

func (r *ParticipationRepository) Create(p *models.ChallengeParticipation) error {
	return r.db.Create(p).Error
}

func (r *ParticipationRepository) FindByID(id uint) (*models.ChallengeParticipation, error) {
	var p models.ChallengeParticipation
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ParticipationRepository) FindByUserAndChallenge(userID, challengeID uint) (*models.ChallengeParticipation, error) {
	var p models.ChallengeParticipation
	err := r.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ParticipationRepository) FindByUser(userID uint, status string) ([]models.ChallengeParticipation, error) {
	query := r.db.Preload("Challenge").Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var list []models.ChallengeParticipation
	err := query.Order("started_at DESC").Find(&list).Error
	return list, err
}

func (r *ParticipationRepository) FindByChallenge(challengeID uint) ([]models.ChallengeParticipation, error) {
	var list []models.ChallengeParticipation
	err := r.db.Where("challenge_id = ?", challengeID).Order("started_at DESC").Find(&list).Error
	return list, err
}

func (r *ParticipationRepository) Update(id uint, updates map[string]interface{}) (*models.ChallengeParticipation, error) {
	result := r.db.Model(&models.ChallengeParticipation{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *ParticipationRepository) CountByUser(userID uint, status string) (int64, error) {
	query := r.db.Model(&models.ChallengeParticipation{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var total int64
	err := query.Count(&total).Error
	return total, err
}
