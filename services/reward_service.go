// services/reward_service.go - Reward catalog, eligibility and claiming
package services

import (
	"log"

	"fitarena/models"
	"fitarena/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RewardService struct {
	rewards *repositories.RewardRepository
	users   *repositories.UserRepository
	badges  *repositories.BadgeRepository
}

func NewRewardService(db *gorm.DB) *RewardService {
	return &RewardService{
		rewards: repositories.NewRewardRepository(db),
		users:   repositories.NewUserRepository(db),
		badges:  repositories.NewBadgeRepository(db),
	}
}

// ================== CATALOG ==================

func (s *RewardService) ListActive() ([]models.Reward, error) {
	return s.rewards.FindAll(true)
}

func (s *RewardService) ListAll() ([]models.Reward, error) {
	return s.rewards.FindAll(false)
}

func (s *RewardService) GetReward(id uint) (*models.Reward, error) {
	reward, err := s.rewards.FindByID(id)
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, NotFound("reward not found", "REWARD_NOT_FOUND")
	}
	return reward, nil
}

func (s *RewardService) CreateReward(reward *models.Reward) error {
	if !models.ValidRewardType(reward.Type) {
		return BadRequest("invalid reward type", "INVALID_REWARD_TYPE")
	}
	return s.rewards.Create(reward)
}

func (s *RewardService) UpdateReward(id uint, updates map[string]interface{}) (*models.Reward, error) {
	reward, err := s.rewards.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, NotFound("reward not found", "REWARD_NOT_FOUND")
	}
	return reward, nil
}

func (s *RewardService) DeleteReward(id uint) error {
	deleted, err := s.rewards.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return NotFound("reward not found", "REWARD_NOT_FOUND")
	}
	return nil
}

func (s *RewardService) UserRewards(userID uint) ([]models.UserReward, error) {
	return s.rewards.FindUserRewards(userID)
}

// DeactivateUserReward retires a claimed reward without deleting the claim.
func (s *RewardService) DeactivateUserReward(userID, rewardID uint) error {
	done, err := s.rewards.DeactivateClaim(userID, rewardID)
	if err != nil {
		return err
	}
	if !done {
		return NotFound("active claim not found", "CLAIM_NOT_FOUND")
	}
	return nil
}

// ================== CLAIMING ==================

// Claim redeems a reward. Checks run in a fixed order: existence, active
// flag, repeatability, balance, conditions. The deduction is conditional on
// the balance so concurrent claims cannot overspend.
func (s *RewardService) Claim(userID, rewardID uint) (*models.UserReward, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("user not found", "USER_NOT_FOUND")
	}

	reward, err := s.GetReward(rewardID)
	if err != nil {
		return nil, err
	}
	if !reward.IsActive {
		return nil, BadRequest("reward is not active", "REWARD_INACTIVE")
	}

	if !reward.IsRepeatable {
		claimed, err := s.rewards.UserHasClaimed(userID, rewardID)
		if err != nil {
			return nil, err
		}
		if claimed {
			return nil, Conflict("reward already claimed", "REWARD_ALREADY_CLAIMED")
		}
	}

	if user.AvailablePoints < reward.PointsCost {
		return nil, BadRequest("insufficient points", "INSUFFICIENT_POINTS")
	}

	eligible, err := s.meetsConditions(user, reward.Conditions)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, BadRequest("conditions not met", "CONDITIONS_NOT_MET")
	}

	if reward.PointsCost > 0 {
		deducted, err := s.users.DeductAvailablePoints(userID, reward.PointsCost)
		if err != nil {
			return nil, err
		}
		if !deducted {
			return nil, BadRequest("insufficient points", "INSUFFICIENT_POINTS")
		}
	}

	claim, err := s.rewards.RecordClaim(userID, rewardID, models.JSONMap{
		"redemption_code": uuid.NewString(),
		"points_cost":     reward.PointsCost,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("✅ User %d claimed reward %d (-%d points)", userID, rewardID, reward.PointsCost)
	return claim, nil
}

func (s *RewardService) meetsConditions(user *models.User, conditions models.RewardConditions) (bool, error) {
	req := conditions.Requirements
	switch conditions.Type {
	case models.ConditionLevel:
		return user.Level >= req.MinLevel, nil
	case models.ConditionPoints:
		return user.TotalPoints >= req.MinTotalPoints, nil
	case models.ConditionBadges:
		if len(req.BadgeIDs) > 0 {
			for _, badgeID := range req.BadgeIDs {
				has, err := s.badges.UserHasBadge(user.ID, badgeID)
				if err != nil {
					return false, err
				}
				if !has {
					return false, nil
				}
			}
			return true, nil
		}
		count, err := s.badges.CountUserBadges(user.ID)
		if err != nil {
			return false, err
		}
		return count >= int64(req.MinBadges), nil
	case models.ConditionAchievements:
		return true, nil
	}
	return false, nil
}
