// services/training_service.go - Training session logging and statistics
package services

import (
	"log"
	"math"
	"time"

	"fitarena/models"
	"fitarena/repositories"

	"gorm.io/gorm"
)

type TrainingService struct {
	sessions     *repositories.TrainingRepository
	challenges   *repositories.ChallengeRepository
	achievements *AchievementService
}

func NewTrainingService(db *gorm.DB) *TrainingService {
	return &TrainingService{
		sessions:     repositories.NewTrainingRepository(db),
		challenges:   repositories.NewChallengeRepository(db),
		achievements: NewAchievementService(db),
	}
}

type TrainingInput struct {
	ChallengeID    *uint                  `json:"challenge_id"`
	Date           time.Time              `json:"date"`
	Duration       int                    `json:"duration"`
	CaloriesBurned int                    `json:"calories_burned"`
	Metrics        map[string]interface{} `json:"metrics"`
}

// LogSession records a workout and feeds it into the XP engine.
func (s *TrainingService) LogSession(userID uint, input TrainingInput) (*models.TrainingSession, error) {
	if input.ChallengeID != nil {
		challenge, err := s.challenges.FindByID(*input.ChallengeID)
		if err != nil {
			return nil, err
		}
		if challenge == nil {
			return nil, NotFound("challenge not found", "CHALLENGE_NOT_FOUND")
		}
	}

	session := &models.TrainingSession{
		UserID:         userID,
		ChallengeID:    input.ChallengeID,
		Date:           input.Date,
		Duration:       input.Duration,
		CaloriesBurned: input.CaloriesBurned,
		Metrics:        input.Metrics,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}

	if _, err := s.achievements.ProcessAction(userID, ActionTrainingCompleted, ActionPayload{
		Duration: input.Duration,
		Calories: input.CaloriesBurned,
	}); err != nil {
		log.Printf("⚠️ Failed to credit training XP for user %d: %v", userID, err)
	}

	return session, nil
}

func (s *TrainingService) GetSession(id, callerID uint) (*models.TrainingSession, error) {
	session, err := s.sessions.FindByID(id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, NotFound("training session not found", "SESSION_NOT_FOUND")
	}
	if session.UserID != callerID {
		return nil, Forbidden("not your training session", "SESSION_UNAUTHORIZED")
	}
	return session, nil
}

func (s *TrainingService) ListSessions(userID uint, filter repositories.TrainingFilter) ([]models.TrainingSession, error) {
	return s.sessions.FindByUser(userID, filter)
}

func (s *TrainingService) UpdateSession(id, callerID uint, updates map[string]interface{}) (*models.TrainingSession, error) {
	if _, err := s.GetSession(id, callerID); err != nil {
		return nil, err
	}
	delete(updates, "user_id")
	return s.sessions.Update(id, updates)
}

func (s *TrainingService) DeleteSession(id, callerID uint) error {
	if _, err := s.GetSession(id, callerID); err != nil {
		return err
	}
	_, err := s.sessions.Delete(id)
	return err
}

type TrainingStats struct {
	TotalSessions     int64 `json:"total_sessions"`
	TotalDuration     int64 `json:"total_duration"`
	TotalCalories     int64 `json:"total_calories"`
	AverageDuration   int   `json:"average_duration"`
	AverageCalories   int   `json:"average_calories"`
	SessionsThisWeek  int64 `json:"sessions_this_week"`
	SessionsThisMonth int64 `json:"sessions_this_month"`
}

// Stats aggregates totals, rounded averages and rolling week/month counts.
// Weeks start on Monday.
func (s *TrainingService) Stats(userID uint) (*TrainingStats, error) {
	totals, err := s.sessions.TotalsFor(userID)
	if err != nil {
		return nil, err
	}

	stats := &TrainingStats{
		TotalSessions: totals.TotalSessions,
		TotalDuration: totals.TotalDuration,
		TotalCalories: totals.TotalCalories,
	}
	if totals.TotalSessions > 0 {
		stats.AverageDuration = int(math.Round(float64(totals.TotalDuration) / float64(totals.TotalSessions)))
		stats.AverageCalories = int(math.Round(float64(totals.TotalCalories) / float64(totals.TotalSessions)))
	}

	now := time.Now()
	if stats.SessionsThisWeek, err = s.sessions.CountSince(userID, startOfWeek(now)); err != nil {
		return nil, err
	}
	if stats.SessionsThisMonth, err = s.sessions.CountSince(userID, startOfMonth(now)); err != nil {
		return nil, err
	}
	return stats, nil
}

func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
