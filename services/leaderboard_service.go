// services/leaderboard_service.go - Activity score ranking
package services

import (
	"sort"

	"fitarena/models"
	"fitarena/repositories"

	"gorm.io/gorm"
)

type LeaderboardService struct {
	users    *repositories.UserRepository
	training *repositories.TrainingRepository
	badges   *repositories.BadgeRepository
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{
		users:    repositories.NewUserRepository(db),
		training: repositories.NewTrainingRepository(db),
		badges:   repositories.NewBadgeRepository(db),
	}
}

type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	UserID        uint    `json:"user_id"`
	FullName      string  `json:"full_name"`
	Level         int     `json:"level"`
	ActivityScore float64 `json:"activity_score"`
	Sessions      int64   `json:"sessions"`
	Badges        int64   `json:"badges"`
	Calories      int64   `json:"calories"`
}

// activityScore weights sessions, badges and calories into one number.
func activityScore(sessions, badges, calories int64) float64 {
	return float64(sessions)*10 + float64(badges)*25 + float64(calories)*0.01
}

// Compute builds the leaderboard. Admins and users without any training
// session are excluded. Ranks are dense: ties share a rank and the next
// distinct score takes the following integer.
func (s *LeaderboardService) Compute() ([]LeaderboardEntry, error) {
	active := true
	users, err := s.users.FindMany(repositories.UserFilter{IsActive: &active})
	if err != nil {
		return nil, err
	}

	var entries []LeaderboardEntry
	for _, user := range users {
		if user.Role == models.RoleAdmin {
			continue
		}
		sessions, err := s.training.CountByUser(user.ID)
		if err != nil {
			return nil, err
		}
		if sessions == 0 {
			continue
		}
		badges, err := s.badges.CountUserBadges(user.ID)
		if err != nil {
			return nil, err
		}
		calories, err := s.training.SumCalories(user.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LeaderboardEntry{
			UserID:        user.ID,
			FullName:      user.FullName,
			Level:         user.Level,
			ActivityScore: activityScore(sessions, badges, calories),
			Sessions:      sessions,
			Badges:        badges,
			Calories:      calories,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ActivityScore > entries[j].ActivityScore
	})

	rank := 0
	var prev float64
	for i := range entries {
		if i == 0 || entries[i].ActivityScore != prev {
			rank++
			prev = entries[i].ActivityScore
		}
		entries[i].Rank = rank
	}
	return entries, nil
}

// MyRank finds the caller's leaderboard position, nil when unranked.
func (s *LeaderboardService) MyRank(userID uint) (*LeaderboardEntry, error) {
	entries, err := s.Compute()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].UserID == userID {
			return &entries[i], nil
		}
	}
	return nil, nil
}
