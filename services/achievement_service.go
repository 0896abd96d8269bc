// services/achievement_service.go - XP economy, levels and streaks
package services

import (
	"log"
	"sort"
	"time"

	"fitarena/repositories"

	"gorm.io/gorm"
)

// levelXPRequirements[n] is the cumulative XP needed to hold level n.
var levelXPRequirements = []int{
	0, 100, 250, 500, 1000, 1750, 2750, 4000, 5500, 7500, 10000,
	13000, 16500, 20500, 25000, 30000, 36000, 42500, 49500, 57000, 65000,
}

const xpPerLevelBeyondTable = 10000

// XPForLevel returns the cumulative XP required to hold a level. Beyond the
// table every level costs another flat step.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level < len(levelXPRequirements) {
		return levelXPRequirements[level]
	}
	last := len(levelXPRequirements) - 1
	return levelXPRequirements[last] + (level-last)*xpPerLevelBeyondTable
}

// LevelForXP returns the highest level whose requirement the XP meets.
// Levels start at 1.
func LevelForXP(xp int) int {
	level := 1
	for XPForLevel(level+1) <= xp {
		level++
	}
	return level
}

// Actions the XP engine knows about.
const (
	ActionTrainingCompleted  = "training_completed"
	ActionChallengeCompleted = "challenge_completed"
	ActionLogin              = "login"
	ActionCustom             = "custom"
)

type ActionPayload struct {
	Duration int `json:"duration"`
	Calories int `json:"calories"`
	XP       int `json:"xp"`
}

// XPForAction maps an action to its XP gain.
func XPForAction(action string, payload ActionPayload) int {
	switch action {
	case ActionTrainingCompleted:
		return 10 + payload.Duration/10 + payload.Calories/50
	case ActionChallengeCompleted:
		return 50
	case ActionLogin:
		return 5
	case ActionCustom:
		return payload.XP
	}
	return 0
}

type AchievementService struct {
	users    *repositories.UserRepository
	training *repositories.TrainingRepository
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{
		users:    repositories.NewUserRepository(db),
		training: repositories.NewTrainingRepository(db),
	}
}

type ActionResult struct {
	XPGained  int  `json:"xp_gained"`
	NewXP     int  `json:"new_xp"`
	NewLevel  int  `json:"new_level"`
	LeveledUp bool `json:"leveled_up"`
	Bonus     int  `json:"bonus"`
}

// ProcessAction credits XP for an action and applies level-up bonuses. The
// bonus for reaching level N is N*50 points, credited to both balances.
func (s *AchievementService) ProcessAction(userID uint, action string, payload ActionPayload) (*ActionResult, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("user not found", "USER_NOT_FOUND")
	}

	gained := XPForAction(action, payload)
	newXP := user.ExperiencePoints + gained
	newLevel := LevelForXP(newXP)

	result := &ActionResult{
		XPGained: gained,
		NewXP:    newXP,
		NewLevel: newLevel,
	}

	if gained != 0 {
		if err := s.users.AddPoints(userID, 0, 0, gained); err != nil {
			return nil, err
		}
	}

	if newLevel > user.Level {
		result.LeveledUp = true
		for lvl := user.Level + 1; lvl <= newLevel; lvl++ {
			result.Bonus += lvl * 50
		}
		if _, err := s.users.Update(userID, map[string]interface{}{
			"level":            newLevel,
			"total_points":     gorm.Expr("total_points + ?", result.Bonus),
			"available_points": gorm.Expr("available_points + ?", result.Bonus),
		}); err != nil {
			return nil, err
		}
		log.Printf("🔄 User %d leveled up to %d (+%d bonus points)", userID, newLevel, result.Bonus)
	}

	return result, nil
}

// AwardPoints credits challenge/badge points to both the lifetime and the
// spendable balance.
func (s *AchievementService) AwardPoints(userID uint, points int) error {
	if points <= 0 {
		return nil
	}
	return s.users.AddPoints(userID, points, points, 0)
}

// ================== STREAKS ==================

type StreakStats struct {
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date"`
}

const streakWindowDays = 365

// Streaks computes consecutive-day training streaks over the trailing year.
// The current streak counts only if the run reaches today or yesterday.
func (s *AchievementService) Streaks(userID uint) (*StreakStats, error) {
	since := time.Now().AddDate(0, 0, -streakWindowDays)
	dates, err := s.training.SessionDates(userID, since)
	if err != nil {
		return nil, err
	}
	return computeStreaks(dates, time.Now()), nil
}

func computeStreaks(dates []time.Time, now time.Time) *StreakStats {
	stats := &StreakStats{}
	if len(dates) == 0 {
		return stats
	}

	// Distinct calendar days, newest first.
	seen := make(map[string]bool)
	var days []time.Time
	for _, d := range dates {
		day := truncateToDay(d)
		key := day.Format("2006-01-02")
		if !seen[key] {
			seen[key] = true
			days = append(days, day)
		}
	}
	sortDaysDesc(days)

	last := days[0]
	stats.LastActivityDate = &last

	// Current streak: walk back day by day from the most recent activity,
	// but only when that activity is today or yesterday.
	today := truncateToDay(now)
	if diffDays(today, days[0]) <= 1 {
		stats.CurrentStreak = 1
		for i := 1; i < len(days); i++ {
			if diffDays(days[i-1], days[i]) == 1 {
				stats.CurrentStreak++
			} else {
				break
			}
		}
	}

	// Longest streak across the whole window.
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if diffDays(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	stats.LongestStreak = longest

	return stats
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func diffDays(later, earlier time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}

func sortDaysDesc(days []time.Time) {
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
}
