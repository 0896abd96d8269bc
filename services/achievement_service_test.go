package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestXPForLevel(t *testing.T) {
	assert.Equal(t, 0, XPForLevel(1))
	assert.Equal(t, 250, XPForLevel(2))
	assert.Equal(t, 1000, XPForLevel(4))
	assert.Equal(t, 65000, XPForLevel(20))
	assert.Equal(t, 75000, XPForLevel(21))
	assert.Equal(t, 85000, XPForLevel(22))
}

func TestLevelForXP(t *testing.T) {
	assert.Equal(t, 1, LevelForXP(0))
	assert.Equal(t, 1, LevelForXP(100))
	assert.Equal(t, 1, LevelForXP(249))
	assert.Equal(t, 2, LevelForXP(250))
	assert.Equal(t, 4, LevelForXP(1000))
	assert.Equal(t, 4, LevelForXP(1749))
	assert.Equal(t, 20, LevelForXP(65000))
	assert.Equal(t, 20, LevelForXP(74999))
	assert.Equal(t, 21, LevelForXP(75000))
}

func TestXPForAction(t *testing.T) {
	assert.Equal(t, 10, XPForAction(ActionTrainingCompleted, ActionPayload{}))
	assert.Equal(t, 10+6+4, XPForAction(ActionTrainingCompleted, ActionPayload{Duration: 60, Calories: 200}))
	assert.Equal(t, 50, XPForAction(ActionChallengeCompleted, ActionPayload{}))
	assert.Equal(t, 5, XPForAction(ActionLogin, ActionPayload{}))
	assert.Equal(t, 42, XPForAction(ActionCustom, ActionPayload{XP: 42}))
	assert.Equal(t, 0, XPForAction("unknown", ActionPayload{XP: 42}))
}

func TestProcessActionLevelUpBonus(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "xp@example.com", "user")
	svc := NewAchievementService(testDb)

	// 250 XP lifts a fresh user to level 2 and pays the 100 point bonus.
	result, err := svc.ProcessAction(user.ID, ActionCustom, ActionPayload{XP: 250})
	assert.NoError(t, err)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, 2, result.NewLevel)
	assert.Equal(t, 100, result.Bonus)

	reloaded, _ := NewUserService(testDb).GetUser(user.ID)
	assert.Equal(t, 2, reloaded.Level)
	assert.Equal(t, 250, reloaded.ExperiencePoints)
	assert.Equal(t, 100, reloaded.TotalPoints)
	assert.Equal(t, 100, reloaded.AvailablePoints)
}

func TestProcessActionMultiLevelBonus(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "xp2@example.com", "user")
	svc := NewAchievementService(testDb)

	// Jumping straight to level 4 pays 2*50 + 3*50 + 4*50.
	result, err := svc.ProcessAction(user.ID, ActionCustom, ActionPayload{XP: 1000})
	assert.NoError(t, err)
	assert.Equal(t, 4, result.NewLevel)
	assert.Equal(t, 450, result.Bonus)
}

func TestComputeStreaksEmpty(t *testing.T) {
	stats := computeStreaks(nil, time.Now())
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 0, stats.LongestStreak)
	assert.Nil(t, stats.LastActivityDate)
}

func TestComputeStreaksActiveRun(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	dates := []time.Time{
		now,
		now.AddDate(0, 0, -1),
		now.AddDate(0, 0, -2),
		now.AddDate(0, 0, -5),
	}
	stats := computeStreaks(dates, now)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
}

func TestComputeStreaksRunEndedYesterdayStillCounts(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	dates := []time.Time{
		now.AddDate(0, 0, -1),
		now.AddDate(0, 0, -2),
	}
	stats := computeStreaks(dates, now)
	assert.Equal(t, 2, stats.CurrentStreak)
}

func TestComputeStreaksStaleRunResetsCurrent(t *testing.T) {
	// A run ending more than one day ago keeps its longest value but the
	// current streak drops to zero.
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	dates := []time.Time{
		now.AddDate(0, 0, -3),
		now.AddDate(0, 0, -4),
		now.AddDate(0, 0, -5),
		now.AddDate(0, 0, -6),
	}
	stats := computeStreaks(dates, now)
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 4, stats.LongestStreak)
}

func TestComputeStreaksDuplicateDaysCollapse(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	morning := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)
	stats := computeStreaks([]time.Time{morning, evening}, now)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.LongestStreak)
}
