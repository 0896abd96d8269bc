// repositories/badge_repository.go
package repositories

import (
	"errors"
	"time"

	"fitarena/models"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{db: db}
}

func (r *BadgeRepository) Create(badge *models.Badge) error {
	return r.db.Create(badge).Error
}

func (r *BadgeRepository) FindByID(id uint) (*models.Badge, error) {
	var badge models.Badge
	if err := r.db.First(&badge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &badge, nil
}

func (r *BadgeRepository) FindAll(activeOnly bool) ([]models.Badge, error) {
	query := r.db.Model(&models.Badge{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var badges []models.Badge
	err := query.Order("id").Find(&badges).Error
	return badges, err
}

func (r *BadgeRepository) Update(id uint, updates map[string]interface{}) (*models.Badge, error) {
	result := r.db.Model(&models.Badge{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *BadgeRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Badge{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *BadgeRepository) FindUserBadges(userID uint) ([]models.UserBadge, error) {
	var earned []models.UserBadge
	err := r.db.Preload("Badge").Where("user_id = ?", userID).
		Order("earned_at DESC").Find(&earned).Error
	return earned, err
}

func (r *BadgeRepository) UserHasBadge(userID, badgeID uint) (bool, error) {
	var total int64
	err := r.db.Model(&models.UserBadge{}).
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Count(&total).Error
	return total > 0, err
}

// Award inserts the pivot row. Returns false without error when the user
// already holds the badge.
func (r *BadgeRepository) Award(userID, badgeID uint, context models.JSONMap) (bool, error) {
	has, err := r.UserHasBadge(userID, badgeID)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}
	earned := models.UserBadge{
		UserID:   userID,
		BadgeID:  badgeID,
		EarnedAt: time.Now(),
		Context:  context,
	}
	if err := r.db.Create(&earned).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *BadgeRepository) CountUserBadges(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.UserBadge{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}
