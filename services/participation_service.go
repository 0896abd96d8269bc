// services/participation_service.go - Starting and claiming challenges
package services

import (
	"log"
	"time"

	"fitarena/models"
	"fitarena/repositories"

	"gorm.io/gorm"
)

type ParticipationService struct {
	participations *repositories.ParticipationRepository
	challenges     *repositories.ChallengeRepository
	achievements   *AchievementService
	gyms           *repositories.GymRepository
}

func NewParticipationService(db *gorm.DB) *ParticipationService {
	return &ParticipationService{
		participations: repositories.NewParticipationRepository(db),
		challenges:     repositories.NewChallengeRepository(db),
		achievements:   NewAchievementService(db),
		gyms:           repositories.NewGymRepository(db),
	}
}

// Start enrolls the user in a challenge. One participation per pair.
func (s *ParticipationService) Start(userID, challengeID uint) (*models.ChallengeParticipation, error) {
	challenge, err := s.challenges.FindByID(challengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, NotFound("challenge not found", "CHALLENGE_NOT_FOUND")
	}

	existing, err := s.participations.FindByUserAndChallenge(userID, challengeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, Conflict("challenge already started", "ALREADY_PARTICIPATING")
	}

	participation := &models.ChallengeParticipation{
		ChallengeID: challengeID,
		UserID:      userID,
		Status:      models.ParticipationInProgress,
		StartedAt:   time.Now(),
	}
	if err := s.participations.Create(participation); err != nil {
		return nil, err
	}
	log.Printf("✅ User %d started challenge %d", userID, challengeID)
	return participation, nil
}

type ClaimInput struct {
	CompletedAt *time.Time `json:"completed_at"`
	Notes       string     `json:"notes"`
}

// Claim marks a participation completed and credits the challenge score.
// Point crediting is best effort: a failed credit is logged, the completion
// itself is never rolled back.
func (s *ParticipationService) Claim(userID, challengeID uint, input ClaimInput) (*models.ChallengeParticipation, error) {
	participation, err := s.participations.FindByUserAndChallenge(userID, challengeID)
	if err != nil {
		return nil, err
	}
	if participation == nil {
		return nil, NotFound("participation not found", "PARTICIPATION_NOT_FOUND")
	}
	if participation.Status == models.ParticipationCompleted {
		return nil, Conflict("challenge already completed", "ALREADY_COMPLETED")
	}

	challenge, err := s.challenges.FindByID(challengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, NotFound("challenge not found", "CHALLENGE_NOT_FOUND")
	}

	completedAt := time.Now()
	if input.CompletedAt != nil {
		completedAt = *input.CompletedAt
	}

	updated, err := s.participations.Update(participation.ID, map[string]interface{}{
		"status":       models.ParticipationCompleted,
		"completed_at": completedAt,
		"score":        challenge.Score,
		"notes":        input.Notes,
	})
	if err != nil {
		return nil, err
	}

	if challenge.Score > 0 {
		if err := s.achievements.AwardPoints(userID, challenge.Score); err != nil {
			log.Printf("⚠️ Failed to credit %d points to user %d: %v", challenge.Score, userID, err)
		}
		if _, err := s.achievements.ProcessAction(userID, ActionChallengeCompleted, ActionPayload{}); err != nil {
			log.Printf("⚠️ Failed to process completion XP for user %d: %v", userID, err)
		}
		if challenge.GymID != nil {
			if err := s.gyms.IncrementScore(*challenge.GymID, challenge.Score); err != nil {
				log.Printf("⚠️ Failed to credit gym %d score: %v", *challenge.GymID, err)
			}
		}
	}

	log.Printf("✅ User %d completed challenge %d (+%d points)", userID, challengeID, challenge.Score)
	return updated, nil
}

func (s *ParticipationService) MyParticipations(userID uint, status string) ([]models.ChallengeParticipation, error) {
	return s.participations.FindByUser(userID, status)
}

type ParticipationStats struct {
	Total       int64 `json:"total"`
	InProgress  int64 `json:"in_progress"`
	Completed   int64 `json:"completed"`
	TotalPoints int   `json:"total_points_earned"`
}

func (s *ParticipationService) MyStats(userID uint) (*ParticipationStats, error) {
	stats := &ParticipationStats{}
	var err error
	if stats.Total, err = s.participations.CountByUser(userID, ""); err != nil {
		return nil, err
	}
	if stats.InProgress, err = s.participations.CountByUser(userID, models.ParticipationInProgress); err != nil {
		return nil, err
	}
	if stats.Completed, err = s.participations.CountByUser(userID, models.ParticipationCompleted); err != nil {
		return nil, err
	}

	completed, err := s.participations.FindByUser(userID, models.ParticipationCompleted)
	if err != nil {
		return nil, err
	}
	for _, p := range completed {
		stats.TotalPoints += p.Score
	}
	return stats, nil
}
