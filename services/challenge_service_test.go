package services

import (
	"testing"

	"fitarena/models"
	"fitarena/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserChallenge(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "creator@example.com", models.RoleUser)
	svc := NewChallengeService(testDb)

	challenge, err := svc.CreateUserChallenge(user.ID, ChallengeInput{
		Name:        "Run Club",
		Description: "Run every day for a week",
		Objectives:  "7 runs",
		Duration:    7,
		Score:       50,
	})
	require.NoError(t, err)
	assert.Equal(t, models.CreatorTypeUser, challenge.CreatorType)
	assert.NotNil(t, challenge.CreatorID)
	assert.Equal(t, user.ID, *challenge.CreatorID)
	assert.Nil(t, challenge.GymID)
}

func TestCreatePrivateChallengeStaysPrivate(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "creator@example.com", models.RoleUser)
	svc := NewChallengeService(testDb)

	private := false
	challenge, err := svc.CreateUserChallenge(user.ID, ChallengeInput{
		Name:        "Secret Club",
		Description: "Invitation only training plan",
		Objectives:  "Keep it quiet",
		Duration:    7,
		IsPublic:    &private,
	})
	require.NoError(t, err)

	reloaded, err := svc.GetChallenge(challenge.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsPublic)

	visible, err := svc.Explore(repositories.ChallengeFilter{})
	assert.NoError(t, err)
	assert.Empty(t, visible)
}

func TestCreateGymChallengeRequiresOwnership(t *testing.T) {
	defer clearDatabase()
	owner := createTestUser(t, "owner@example.com", models.RoleGymOwner)
	stranger := createTestUser(t, "stranger@example.com", models.RoleGymOwner)
	gym := createTestGym(t, owner.ID, models.GymStatusApproved)
	svc := NewChallengeService(testDb)

	_, err := svc.CreateGymChallenge(stranger.ID, gym.ID, ChallengeInput{Name: "30 Day Abs", Score: 100})
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "GYM_NOT_OWNED", svcErr.Code)
	assert.Equal(t, 403, svcErr.Status)
}

func TestCreateGymChallengeRequiresApproval(t *testing.T) {
	defer clearDatabase()
	owner := createTestUser(t, "owner@example.com", models.RoleGymOwner)
	gym := createTestGym(t, owner.ID, models.GymStatusPending)
	svc := NewChallengeService(testDb)

	_, err := svc.CreateGymChallenge(owner.ID, gym.ID, ChallengeInput{Name: "30 Day Abs", Score: 100})
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "GYM_NOT_APPROVED", svcErr.Code)
}

func TestCreateGymChallengeDuplicateName(t *testing.T) {
	defer clearDatabase()
	owner := createTestUser(t, "owner@example.com", models.RoleGymOwner)
	gym := createTestGym(t, owner.ID, models.GymStatusApproved)
	svc := NewChallengeService(testDb)

	_, err := svc.CreateGymChallenge(owner.ID, gym.ID, ChallengeInput{Name: "30 Day Abs", Score: 100})
	require.NoError(t, err)

	_, err = svc.CreateGymChallenge(owner.ID, gym.ID, ChallengeInput{Name: "30 Day Abs", Score: 50})
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "CHALLENGE_DUPLICATE", svcErr.Code)
	assert.Equal(t, 409, svcErr.Status)
}

func TestCreateGymChallengeTaggedUnion(t *testing.T) {
	defer clearDatabase()
	owner := createTestUser(t, "owner@example.com", models.RoleGymOwner)
	gym := createTestGym(t, owner.ID, models.GymStatusApproved)
	svc := NewChallengeService(testDb)

	challenge, err := svc.CreateGymChallenge(owner.ID, gym.ID, ChallengeInput{Name: "30 Day Abs", Score: 100})
	require.NoError(t, err)
	assert.Equal(t, models.CreatorTypeGym, challenge.CreatorType)
	assert.NotNil(t, challenge.GymID)
	assert.Nil(t, challenge.CreatorID)

	// The invariant survives a database round trip.
	reloaded, err := svc.GetChallenge(challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CreatorTypeGym, reloaded.CreatorType)
	assert.Nil(t, reloaded.CreatorID)
	assert.Equal(t, gym.ID, *reloaded.GymID)
}

func TestChallengeCreatorHookRejectsInvalid(t *testing.T) {
	defer clearDatabase()

	bad := &models.Challenge{Name: "No creator", CreatorType: models.CreatorTypeUser}
	err := testDb.Create(bad).Error
	assert.ErrorIs(t, err, models.ErrUserChallengeWithoutOwner)

	bad = &models.Challenge{Name: "No gym", CreatorType: models.CreatorTypeGym}
	err = testDb.Create(bad).Error
	assert.ErrorIs(t, err, models.ErrGymChallengeWithoutGym)

	bad = &models.Challenge{Name: "Mystery", CreatorType: "robot"}
	err = testDb.Create(bad).Error
	assert.ErrorIs(t, err, models.ErrUnknownCreatorType)
}

func TestUpdateChallengeOwnership(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "creator@example.com", models.RoleUser)
	stranger := createTestUser(t, "stranger@example.com", models.RoleUser)
	challenge := createTestChallenge(t, creator.ID, 50)
	svc := NewChallengeService(testDb)

	_, err := svc.UpdateChallenge(challenge.ID, stranger.ID, models.RoleUser, map[string]interface{}{"name": "Taken over"})
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "CHALLENGE_UNAUTHORIZED", svcErr.Code)

	updated, err := svc.UpdateChallenge(challenge.ID, creator.ID, models.RoleUser, map[string]interface{}{"name": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	// The creator columns are untouched by the update.
	assert.Equal(t, models.CreatorTypeUser, updated.CreatorType)
	require.NotNil(t, updated.CreatorID)
	assert.Equal(t, creator.ID, *updated.CreatorID)
}

func TestUpdateGymChallengeNeedsGymOwnerRole(t *testing.T) {
	defer clearDatabase()
	owner := createTestUser(t, "owner@example.com", models.RoleGymOwner)
	gym := createTestGym(t, owner.ID, models.GymStatusApproved)
	svc := NewChallengeService(testDb)

	challenge, err := svc.CreateGymChallenge(owner.ID, gym.ID, ChallengeInput{Name: "Gym push", Score: 10})
	require.NoError(t, err)

	// Same user id but wrong role is refused.
	_, err = svc.UpdateChallenge(challenge.ID, owner.ID, models.RoleUser, map[string]interface{}{"name": "x"})
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "CHALLENGE_UNAUTHORIZED", svcErr.Code)

	_, err = svc.UpdateChallenge(challenge.ID, owner.ID, models.RoleGymOwner, map[string]interface{}{"name": "Updated"})
	assert.NoError(t, err)
}

func TestTrendingOrdersByParticipants(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "creator@example.com", models.RoleUser)
	quiet := createTestChallenge(t, creator.ID, 10)
	popular := createTestChallenge(t, creator.ID, 10)

	partSvc := NewParticipationService(testDb)
	for i := 0; i < 3; i++ {
		u := createTestUser(t, string(rune('a'+i))+"@example.com", models.RoleUser)
		_, err := partSvc.Start(u.ID, popular.ID)
		assert.NoError(t, err)
	}

	svc := NewChallengeService(testDb)
	trending, err := svc.Trending(10)
	assert.NoError(t, err)
	assert.Len(t, trending, 2)
	assert.Equal(t, popular.ID, trending[0].ID)
	assert.Equal(t, quiet.ID, trending[1].ID)
}

func TestRecommendedSkipsStarted(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "creator@example.com", models.RoleUser)
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	started := createTestChallenge(t, creator.ID, 10)
	fresh := createTestChallenge(t, creator.ID, 10)

	_, err := NewParticipationService(testDb).Start(user.ID, started.ID)
	assert.NoError(t, err)

	recommended, err := NewChallengeService(testDb).Recommended(user.ID, 10)
	assert.NoError(t, err)
	assert.Len(t, recommended, 1)
	assert.Equal(t, fresh.ID, recommended[0].ID)
}
