// repositories/challenge_repository.go
package repositories

import (
	"errors"
	"strings"

	"fitarena/models"

	"gorm.io/gorm"
)

type ChallengeFilter struct {
	CreatorType string
	GymID       *uint
	CreatorID   *uint
	Difficulty  string
	Type        string
	IsPublic    *bool
	MinDuration int
	MaxDuration int
	Search      string
	Limit       int
	Offset      int
}

type ChallengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

func (r *ChallengeRepository) Create(challenge *models.Challenge) error {
	return r.db.Create(challenge).Error
}

func (r *ChallengeRepository) FindByID(id uint) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := r.db.First(&challenge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &challenge, nil
}

func (r *ChallengeRepository) FindWithFilters(filter ChallengeFilter) ([]models.Challenge, error) {
	query := r.db.Model(&models.Challenge{})

	if filter.CreatorType != "" {
		query = query.Where("creator_type = ?", filter.CreatorType)
	}
	if filter.GymID != nil {
		query = query.Where("gym_id = ?", *filter.GymID)
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}
	if filter.MinDuration > 0 {
		query = query.Where("duration >= ?", filter.MinDuration)
	}
	if filter.MaxDuration > 0 {
		query = query.Where("duration <= ?", filter.MaxDuration)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var challenges []models.Challenge
	err := query.Order("created_at DESC").Find(&challenges).Error
	return challenges, err
}

func (r *ChallengeRepository) FindByGym(gymID uint) ([]models.Challenge, error) {
	gid := gymID
	return r.FindWithFilters(ChallengeFilter{CreatorType: models.CreatorTypeGym, GymID: &gid})
}

func (r *ChallengeRepository) ExistsByGymAndName(gymID uint, name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Challenge{}).
		Where("gym_id = ? AND LOWER(name) = ?", gymID, strings.ToLower(name)).
		Count(&count).Error
	return count > 0, err
}

func (r *ChallengeRepository) FindByCreator(userID uint) ([]models.Challenge, error) {
	uid := userID
	return r.FindWithFilters(ChallengeFilter{CreatorType: models.CreatorTypeUser, CreatorID: &uid})
}

func (r *ChallengeRepository) Update(id uint, updates map[string]interface{}) (*models.Challenge, error) {
	result := r.db.Model(&models.Challenge{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *ChallengeRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Challenge{}, id)
	return result.RowsAffected > 0, result.Error
}

// CountParticipants returns participation counts keyed by challenge id, used
// for trending and popularity ordering.
func (r *ChallengeRepository) CountParticipants(challengeIDs []uint) (map[uint]int64, error) {
	type row struct {
		ChallengeID uint
		Total       int64
	}
	var rows []row
	err := r.db.Model(&models.ChallengeParticipation{}).
		Select("challenge_id, COUNT(*) as total").
		Where("challenge_id IN ?", challengeIDs).
		Group("challenge_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.ChallengeID] = r.Total
	}
	return counts, nil
}
