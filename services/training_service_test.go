package services

import (
	"testing"
	"time"

	"fitarena/models"

	"github.com/stretchr/testify/assert"
)

func TestLogSessionCreditsXP(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	svc := NewTrainingService(testDb)

	session, err := svc.LogSession(user.ID, TrainingInput{
		Date:           time.Now(),
		Duration:       60,
		CaloriesBurned: 200,
	})
	assert.NoError(t, err)
	assert.NotZero(t, session.ID)

	// 10 base + 60/10 + 200/50 = 20 XP.
	reloaded, _ := NewUserService(testDb).GetUser(user.ID)
	assert.Equal(t, 20, reloaded.ExperiencePoints)
}

func TestLogSessionUnknownChallenge(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	missing := uint(9999)

	_, err := NewTrainingService(testDb).LogSession(user.ID, TrainingInput{
		Date:        time.Now(),
		Duration:    30,
		ChallengeID: &missing,
	})
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "CHALLENGE_NOT_FOUND", svcErr.Code)
}

func TestSessionOwnerGating(t *testing.T) {
	defer clearDatabase()
	owner := createTestUser(t, "owner@example.com", models.RoleUser)
	other := createTestUser(t, "other@example.com", models.RoleUser)
	session := createTestSession(t, owner.ID, time.Now(), 30, 100)
	svc := NewTrainingService(testDb)

	_, err := svc.GetSession(session.ID, other.ID)
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "SESSION_UNAUTHORIZED", svcErr.Code)

	err = svc.DeleteSession(session.ID, other.ID)
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "SESSION_UNAUTHORIZED", svcErr.Code)

	assert.NoError(t, svc.DeleteSession(session.ID, owner.ID))
}

func TestTrainingStats(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	createTestSession(t, user.ID, time.Now(), 30, 100)
	createTestSession(t, user.ID, time.Now(), 45, 200)

	stats, err := NewTrainingService(testDb).Stats(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalSessions)
	assert.Equal(t, int64(75), stats.TotalDuration)
	assert.Equal(t, int64(300), stats.TotalCalories)
	// Averages are rounded to the nearest integer.
	assert.Equal(t, 38, stats.AverageDuration)
	assert.Equal(t, 150, stats.AverageCalories)
	assert.Equal(t, int64(2), stats.SessionsThisMonth)
}

func TestStartOfWeekIsMonday(t *testing.T) {
	// Wednesday 2026-03-11.
	wednesday := time.Date(2026, 3, 11, 15, 30, 0, 0, time.UTC)
	start := startOfWeek(wednesday)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, 9, start.Day())

	// Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	start = startOfWeek(sunday)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, 9, start.Day())
}

func TestTrainingStatsEmpty(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "athlete@example.com", models.RoleUser)

	stats, err := NewTrainingService(testDb).Stats(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalSessions)
	assert.Equal(t, 0, stats.AverageDuration)
}
