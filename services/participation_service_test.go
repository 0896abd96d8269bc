package services

import (
	"testing"

	"fitarena/models"

	"github.com/stretchr/testify/assert"
)

func TestStartChallenge(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "creator@example.com", models.RoleUser)
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	challenge := createTestChallenge(t, creator.ID, 50)
	svc := NewParticipationService(testDb)

	participation, err := svc.Start(user.ID, challenge.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.ParticipationInProgress, participation.Status)

	_, err = svc.Start(user.ID, challenge.ID)
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "ALREADY_PARTICIPATING", svcErr.Code)
}

func TestStartMissingChallenge(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "athlete@example.com", models.RoleUser)

	_, err := NewParticipationService(testDb).Start(user.ID, 9999)
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "CHALLENGE_NOT_FOUND", svcErr.Code)
	assert.Equal(t, 404, svcErr.Status)
}

func TestClaimWithoutParticipation(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "creator@example.com", models.RoleUser)
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	challenge := createTestChallenge(t, creator.ID, 50)

	_, err := NewParticipationService(testDb).Claim(user.ID, challenge.ID, ClaimInput{})
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "PARTICIPATION_NOT_FOUND", svcErr.Code)
}

func TestClaimCreditsScore(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "creator@example.com", models.RoleUser)
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	challenge := createTestChallenge(t, creator.ID, 80)
	svc := NewParticipationService(testDb)

	_, err := svc.Start(user.ID, challenge.ID)
	assert.NoError(t, err)

	participation, err := svc.Claim(user.ID, challenge.ID, ClaimInput{Notes: "done"})
	assert.NoError(t, err)
	assert.Equal(t, models.ParticipationCompleted, participation.Status)
	assert.NotNil(t, participation.CompletedAt)
	assert.Equal(t, 80, participation.Score)
	assert.Equal(t, "done", participation.Notes)

	reloaded, _ := NewUserService(testDb).GetUser(user.ID)
	assert.GreaterOrEqual(t, reloaded.TotalPoints, 80)
	assert.GreaterOrEqual(t, reloaded.AvailablePoints, 80)
	// Completion XP flows through the action engine too.
	assert.GreaterOrEqual(t, reloaded.ExperiencePoints, 50)
}

func TestClaimTwiceConflicts(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "creator@example.com", models.RoleUser)
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	challenge := createTestChallenge(t, creator.ID, 50)
	svc := NewParticipationService(testDb)

	_, err := svc.Start(user.ID, challenge.ID)
	assert.NoError(t, err)
	_, err = svc.Claim(user.ID, challenge.ID, ClaimInput{})
	assert.NoError(t, err)

	_, err = svc.Claim(user.ID, challenge.ID, ClaimInput{})
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "ALREADY_COMPLETED", svcErr.Code)
	assert.Equal(t, 409, svcErr.Status)
}

func TestClaimGymChallengeCreditsGym(t *testing.T) {
	defer clearDatabase()
	owner := createTestUser(t, "owner@example.com", models.RoleGymOwner)
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	gym := createTestGym(t, owner.ID, models.GymStatusApproved)

	challenge, err := NewChallengeService(testDb).CreateGymChallenge(owner.ID, gym.ID, ChallengeInput{
		Name:  "Gym grind",
		Score: 40,
	})
	assert.NoError(t, err)

	svc := NewParticipationService(testDb)
	_, err = svc.Start(user.ID, challenge.ID)
	assert.NoError(t, err)
	_, err = svc.Claim(user.ID, challenge.ID, ClaimInput{})
	assert.NoError(t, err)

	reloadedGym, err := NewGymService(testDb).GetGym(gym.ID)
	assert.NoError(t, err)
	assert.Equal(t, 40, reloadedGym.TotalScore)
}

func TestMyStats(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "creator@example.com", models.RoleUser)
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	first := createTestChallenge(t, creator.ID, 30)
	second := createTestChallenge(t, creator.ID, 20)
	svc := NewParticipationService(testDb)

	_, err := svc.Start(user.ID, first.ID)
	assert.NoError(t, err)
	_, err = svc.Start(user.ID, second.ID)
	assert.NoError(t, err)
	_, err = svc.Claim(user.ID, first.ID, ClaimInput{})
	assert.NoError(t, err)

	stats, err := svc.MyStats(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.InProgress)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, 30, stats.TotalPoints)
}
