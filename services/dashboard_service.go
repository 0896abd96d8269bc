// services/dashboard_service.go - Aggregated gamification profile
package services

import (
	"fitarena/models"
	"fitarena/repositories"

	"gorm.io/gorm"
)

type DashboardService struct {
	users        *repositories.UserRepository
	badges       *BadgeService
	rewards      *RewardService
	achievements *AchievementService
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		users:        repositories.NewUserRepository(db),
		badges:       NewBadgeService(db),
		rewards:      NewRewardService(db),
		achievements: NewAchievementService(db),
	}
}

type Dashboard struct {
	Level            int                 `json:"level"`
	ExperiencePoints int                 `json:"experience_points"`
	XPForNextLevel   int                 `json:"xp_for_next_level"`
	TotalPoints      int                 `json:"total_points"`
	AvailablePoints  int                 `json:"available_points"`
	Badges           []BadgeProgress     `json:"badges"`
	Rewards          []models.UserReward `json:"rewards"`
	Streaks          *StreakStats        `json:"streaks"`
}

// BuildFor assembles the user's gamification dashboard in one response.
func (s *DashboardService) BuildFor(userID uint) (*Dashboard, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("user not found", "USER_NOT_FOUND")
	}

	badges, err := s.badges.ProgressFor(userID)
	if err != nil {
		return nil, err
	}
	rewards, err := s.rewards.UserRewards(userID)
	if err != nil {
		return nil, err
	}
	streaks, err := s.achievements.Streaks(userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Level:            user.Level,
		ExperiencePoints: user.ExperiencePoints,
		XPForNextLevel:   XPForLevel(user.Level + 1),
		TotalPoints:      user.TotalPoints,
		AvailablePoints:  user.AvailablePoints,
		Badges:           badges,
		Rewards:          rewards,
		Streaks:          streaks,
	}, nil
}
