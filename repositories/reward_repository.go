// repositories/reward_repository.go
package repositories

import (
	"errors"
	"time"

	"fitarena/models"

	"gorm.io/gorm"
)

type RewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

func (r *RewardRepository) Create(reward *models.Reward) error {
	return r.db.Create(reward).Error
}

func (r *RewardRepository) FindByID(id uint) (*models.Reward, error) {
	var reward models.Reward
	if err := r.db.First(&reward, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reward, nil
}

func (r *RewardRepository) FindAll(activeOnly bool) ([]models.Reward, error) {
	query := r.db.Model(&models.Reward{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var rewards []models.Reward
	err := query.Order("points_cost").Find(&rewards).Error
	return rewards, err
}

func (r *RewardRepository) Update(id uint, updates map[string]interface{}) (*models.Reward, error) {
	result := r.db.Model(&models.Reward{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *RewardRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Reward{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *RewardRepository) FindUserRewards(userID uint) ([]models.UserReward, error) {
	var claimed []models.UserReward
	err := r.db.Preload("Reward").Where("user_id = ?", userID).
		Order("claimed_at DESC").Find(&claimed).Error
	return claimed, err
}

func (r *RewardRepository) UserHasClaimed(userID, rewardID uint) (bool, error) {
	var total int64
	err := r.db.Model(&models.UserReward{}).
		Where("user_id = ? AND reward_id = ?", userID, rewardID).
		Count(&total).Error
	return total > 0, err
}

func (r *RewardRepository) RecordClaim(userID, rewardID uint, context models.JSONMap) (*models.UserReward, error) {
	claim := &models.UserReward{
		UserID:    userID,
		RewardID:  rewardID,
		ClaimedAt: time.Now(),
		Context:   context,
		IsActive:  true,
	}
	if err := r.db.Create(claim).Error; err != nil {
		return nil, err
	}
	return claim, nil
}

// DeactivateClaim flags a claimed reward inactive while keeping the row.
func (r *RewardRepository) DeactivateClaim(userID, rewardID uint) (bool, error) {
	result := r.db.Model(&models.UserReward{}).
		Where("user_id = ? AND reward_id = ? AND is_active = ?", userID, rewardID, true).
		Update("is_active", false)
	return result.RowsAffected > 0, result.Error
}
