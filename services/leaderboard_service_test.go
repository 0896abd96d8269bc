package services

import (
	"testing"
	"time"

	"fitarena/models"

	"github.com/stretchr/testify/assert"
)

func TestActivityScore(t *testing.T) {
	assert.Equal(t, 0.0, activityScore(0, 0, 0))
	assert.Equal(t, 10.0, activityScore(1, 0, 0))
	assert.Equal(t, 25.0, activityScore(0, 1, 0))
	assert.Equal(t, 1.0, activityScore(0, 0, 100))
	assert.Equal(t, 136.0, activityScore(10, 1, 1100))
}

func TestLeaderboardExclusions(t *testing.T) {
	defer clearDatabase()
	admin := createTestUser(t, "admin@example.com", models.RoleAdmin)
	idle := createTestUser(t, "idle@example.com", models.RoleUser)
	active := createTestUser(t, "active@example.com", models.RoleUser)

	// Admins train too, but never appear on the board.
	createTestSession(t, admin.ID, time.Now(), 60, 500)
	createTestSession(t, active.ID, time.Now(), 30, 200)
	_ = idle

	entries, err := NewLeaderboardService(testDb).Compute()
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, active.ID, entries[0].UserID)
}

func TestLeaderboardDenseRanks(t *testing.T) {
	defer clearDatabase()
	first := createTestUser(t, "first@example.com", models.RoleUser)
	tiedA := createTestUser(t, "tied-a@example.com", models.RoleUser)
	tiedB := createTestUser(t, "tied-b@example.com", models.RoleUser)

	createTestSession(t, first.ID, time.Now(), 30, 0)
	createTestSession(t, first.ID, time.Now().AddDate(0, 0, -1), 30, 0)
	createTestSession(t, tiedA.ID, time.Now(), 30, 0)
	createTestSession(t, tiedB.ID, time.Now(), 30, 0)

	entries, err := NewLeaderboardService(testDb).Compute()
	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, first.ID, entries[0].UserID)
	// The tie shares rank 2; no rank is skipped.
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 2, entries[2].Rank)
}

func TestMyRankUnranked(t *testing.T) {
	defer clearDatabase()
	idle := createTestUser(t, "idle@example.com", models.RoleUser)

	entry, err := NewLeaderboardService(testDb).MyRank(idle.ID)
	assert.NoError(t, err)
	assert.Nil(t, entry)
}
