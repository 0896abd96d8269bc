package services

import (
	"testing"

	"fitarena/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateGroupAutoJoinsCreator(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "creator@example.com", models.RoleUser)
	challenge := createTestChallenge(t, creator.ID, 10)
	svc := NewGroupChallengeService(testDb)

	group, err := svc.CreateGroup(creator.ID, challenge.ID, "Morning Crew")
	assert.NoError(t, err)
	assert.Len(t, group.Participants, 1)
	assert.Equal(t, creator.ID, group.Participants[0].UserID)
}

func TestCreateGroupMissingChallenge(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "creator@example.com", models.RoleUser)

	_, err := NewGroupChallengeService(testDb).CreateGroup(creator.ID, 9999, "Ghost Crew")
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "CHALLENGE_NOT_FOUND", svcErr.Code)
}

func TestJoinGroupOnce(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "creator@example.com", models.RoleUser)
	joiner := createTestUser(t, "joiner@example.com", models.RoleUser)
	challenge := createTestChallenge(t, creator.ID, 10)
	svc := NewGroupChallengeService(testDb)

	group, err := svc.CreateGroup(creator.ID, challenge.ID, "Crew")
	assert.NoError(t, err)

	_, err = svc.Join(group.ID, joiner.ID)
	assert.NoError(t, err)

	_, err = svc.Join(group.ID, joiner.ID)
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "ALREADY_JOINED", svcErr.Code)

	// The creator is a member already via auto-join.
	_, err = svc.Join(group.ID, creator.ID)
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "ALREADY_JOINED", svcErr.Code)
}

func TestMyGroups(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "creator@example.com", models.RoleUser)
	outsider := createTestUser(t, "outsider@example.com", models.RoleUser)
	challenge := createTestChallenge(t, creator.ID, 10)
	svc := NewGroupChallengeService(testDb)

	_, err := svc.CreateGroup(creator.ID, challenge.ID, "Crew")
	assert.NoError(t, err)

	mine, err := svc.MyGroups(creator.ID)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)

	none, err := svc.MyGroups(outsider.ID)
	assert.NoError(t, err)
	assert.Empty(t, none)
}
