// services/badge_service.go - Badge catalog, criteria engine and awarding
package services

import (
	"log"
	"time"

	"fitarena/models"
	"fitarena/repositories"

	"gorm.io/gorm"
)

type BadgeService struct {
	badges         *repositories.BadgeRepository
	users          *repositories.UserRepository
	training       *repositories.TrainingRepository
	participations *repositories.ParticipationRepository
	achievements   *AchievementService
}

func NewBadgeService(db *gorm.DB) *BadgeService {
	return &BadgeService{
		badges:         repositories.NewBadgeRepository(db),
		users:          repositories.NewUserRepository(db),
		training:       repositories.NewTrainingRepository(db),
		participations: repositories.NewParticipationRepository(db),
		achievements:   NewAchievementService(db),
	}
}

// ================== CATALOG ==================

func (s *BadgeService) ListActive() ([]models.Badge, error) {
	return s.badges.FindAll(true)
}

func (s *BadgeService) ListAll() ([]models.Badge, error) {
	return s.badges.FindAll(false)
}

func (s *BadgeService) GetBadge(id uint) (*models.Badge, error) {
	badge, err := s.badges.FindByID(id)
	if err != nil {
		return nil, err
	}
	if badge == nil {
		return nil, NotFound("badge not found", "BADGE_NOT_FOUND")
	}
	return badge, nil
}

func (s *BadgeService) CreateBadge(badge *models.Badge) error {
	if !models.ValidBadgeType(badge.Type) {
		return BadRequest("invalid badge type", "INVALID_BADGE_TYPE")
	}
	return s.badges.Create(badge)
}

func (s *BadgeService) UpdateBadge(id uint, updates map[string]interface{}) (*models.Badge, error) {
	badge, err := s.badges.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if badge == nil {
		return nil, NotFound("badge not found", "BADGE_NOT_FOUND")
	}
	return badge, nil
}

func (s *BadgeService) DeleteBadge(id uint) error {
	deleted, err := s.badges.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return NotFound("badge not found", "BADGE_NOT_FOUND")
	}
	return nil
}

// ================== AWARDING ==================

// Award grants a badge and credits its points. Idempotent: a user already
// holding the badge is skipped without error, reported by the bool.
func (s *BadgeService) Award(userID, badgeID uint, context models.JSONMap) (bool, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, NotFound("user not found", "USER_NOT_FOUND")
	}
	badge, err := s.GetBadge(badgeID)
	if err != nil {
		return false, err
	}

	awarded, err := s.badges.Award(userID, badgeID, context)
	if err != nil || !awarded {
		return false, err
	}

	if badge.Points > 0 {
		if err := s.users.AddPoints(userID, badge.Points, badge.Points, badge.Points); err != nil {
			return true, err
		}
	}
	log.Printf("✅ Badge %d awarded to user %d (+%d points)", badgeID, userID, badge.Points)
	return true, nil
}

// AwardToMany is the bulk admin grant. Holders are skipped.
func (s *BadgeService) AwardToMany(badgeID uint, userIDs []uint) (int, error) {
	awarded := 0
	for _, userID := range userIDs {
		ok, err := s.Award(userID, badgeID, nil)
		if err != nil {
			return awarded, err
		}
		if ok {
			awarded++
		}
	}
	return awarded, nil
}

func (s *BadgeService) UserBadges(userID uint) ([]models.UserBadge, error) {
	return s.badges.FindUserBadges(userID)
}

// ================== CRITERIA ENGINE ==================

// userStats is the snapshot criteria are evaluated against.
type userStats struct {
	Sessions            int64
	SessionsThisWeek    int64
	SessionsThisMonth   int64
	ChallengesCompleted int64
	Calories            int64
	CurrentStreak       int
	Level               int
	TotalPoints         int
}

func (s *BadgeService) statsFor(userID uint) (*userStats, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("user not found", "USER_NOT_FOUND")
	}

	stats := &userStats{Level: user.Level, TotalPoints: user.TotalPoints}
	if stats.Sessions, err = s.training.CountByUser(userID); err != nil {
		return nil, err
	}
	now := time.Now()
	if stats.SessionsThisWeek, err = s.training.CountSince(userID, startOfWeek(now)); err != nil {
		return nil, err
	}
	if stats.SessionsThisMonth, err = s.training.CountSince(userID, startOfMonth(now)); err != nil {
		return nil, err
	}
	if stats.ChallengesCompleted, err = s.participations.CountByUser(userID, models.ParticipationCompleted); err != nil {
		return nil, err
	}
	if stats.Calories, err = s.training.SumCalories(userID); err != nil {
		return nil, err
	}
	streaks, err := s.achievements.Streaks(userID)
	if err != nil {
		return nil, err
	}
	stats.CurrentStreak = streaks.CurrentStreak
	return stats, nil
}

func criteriaValue(criteria models.BadgeCriteria, stats *userStats) float64 {
	switch criteria.Type {
	case models.CriteriaTrainingSessions:
		switch criteria.Period {
		case "week":
			return float64(stats.SessionsThisWeek)
		case "month":
			return float64(stats.SessionsThisMonth)
		}
		return float64(stats.Sessions)
	case models.CriteriaChallengesCompleted:
		return float64(stats.ChallengesCompleted)
	case models.CriteriaCaloriesBurned:
		return float64(stats.Calories)
	case models.CriteriaStreak:
		return float64(stats.CurrentStreak)
	case models.CriteriaLevel:
		return float64(stats.Level)
	case models.CriteriaPoints:
		return float64(stats.TotalPoints)
	}
	return 0
}

// BadgeProgress is a badge with the user's completion percentage toward it.
type BadgeProgress struct {
	Badge    models.Badge `json:"badge"`
	Earned   bool         `json:"earned"`
	Progress int          `json:"progress"`
}

// ProgressFor reports every active badge with the user's progress, capped at
// 100. Earned badges always report 100.
func (s *BadgeService) ProgressFor(userID uint) ([]BadgeProgress, error) {
	badges, err := s.badges.FindAll(true)
	if err != nil {
		return nil, err
	}
	earned, err := s.badges.FindUserBadges(userID)
	if err != nil {
		return nil, err
	}
	held := make(map[uint]bool, len(earned))
	for _, ub := range earned {
		held[ub.BadgeID] = true
	}

	stats, err := s.statsFor(userID)
	if err != nil {
		return nil, err
	}

	progress := make([]BadgeProgress, 0, len(badges))
	for _, badge := range badges {
		entry := BadgeProgress{Badge: badge, Earned: held[badge.ID]}
		if entry.Earned {
			entry.Progress = 100
		} else if badge.Criteria.Target > 0 {
			pct := criteriaValue(badge.Criteria, stats) / float64(badge.Criteria.Target) * 100
			if pct > 100 {
				pct = 100
			}
			entry.Progress = int(pct)
		}
		progress = append(progress, entry)
	}
	return progress, nil
}

// EvaluateUser awards every active badge whose criterion the user now meets.
// Called after point-earning actions.
func (s *BadgeService) EvaluateUser(userID uint) ([]models.Badge, error) {
	badges, err := s.badges.FindAll(true)
	if err != nil {
		return nil, err
	}
	stats, err := s.statsFor(userID)
	if err != nil {
		return nil, err
	}

	var newlyEarned []models.Badge
	for _, badge := range badges {
		if badge.Criteria.Target <= 0 {
			continue
		}
		if criteriaValue(badge.Criteria, stats) < float64(badge.Criteria.Target) {
			continue
		}
		awarded, err := s.Award(userID, badge.ID, models.JSONMap{"auto": true})
		if err != nil {
			return newlyEarned, err
		}
		if awarded {
			newlyEarned = append(newlyEarned, badge)
		}
	}
	return newlyEarned, nil
}
