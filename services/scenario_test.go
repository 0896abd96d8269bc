package services

import (
	"testing"

	"fitarena/models"

	"github.com/stretchr/testify/assert"
)

// Covers the full happy path: register, log in, create a personal challenge,
// start it and claim it.
func TestRegisterCreateStartClaim(t *testing.T) {
	defer clearDatabase()

	auth := NewAuthService(testDb)
	result, err := auth.Register("Jane Runner", "jane@example.com", "supersecret", "")
	assert.NoError(t, err)

	login, err := auth.Login("jane@example.com", "supersecret")
	assert.NoError(t, err)
	userID := login.User.ID

	challenge, err := NewChallengeService(testDb).CreateUserChallenge(userID, ChallengeInput{
		Name:        "30-Day Plank",
		Description: "Hold a plank every single day",
		Objectives:  "Build core strength",
		Duration:    30,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.CreatorTypeUser, challenge.CreatorType)
	assert.Equal(t, userID, *challenge.CreatorID)

	participations := NewParticipationService(testDb)
	started, err := participations.Start(userID, challenge.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.ParticipationInProgress, started.Status)

	claimed, err := participations.Claim(userID, challenge.ID, ClaimInput{})
	assert.NoError(t, err)
	assert.Equal(t, models.ParticipationCompleted, claimed.Status)
	assert.NotNil(t, claimed.CompletedAt)
	// Score mirrors the challenge's score field, zero when unset.
	assert.Equal(t, 0, claimed.Score)

	assert.Equal(t, result.User.ID, userID)
}
