package services

import (
	"testing"

	"fitarena/models"

	"github.com/stretchr/testify/assert"
)

func createTestReward(t *testing.T, cost int, conditions models.RewardConditions, active, repeatable bool) *models.Reward {
	t.Helper()
	reward := &models.Reward{
		Name:         "Test Reward",
		Type:         models.RewardTypeVirtualItem,
		Conditions:   conditions,
		PointsCost:   cost,
		IsActive:     active,
		IsRepeatable: repeatable,
	}
	if err := testDb.Create(reward).Error; err != nil {
		t.Fatalf("failed to create reward: %s", err)
	}
	return reward
}

func giveUserPoints(t *testing.T, userID uint, points int) {
	t.Helper()
	err := testDb.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"total_points":     points,
		"available_points": points,
	}).Error
	if err != nil {
		t.Fatalf("failed to credit points: %s", err)
	}
}

func achievementCondition() models.RewardConditions {
	return models.RewardConditions{Type: models.ConditionAchievements}
}

func TestCreateInactiveRewardStaysInactive(t *testing.T) {
	defer clearDatabase()
	svc := NewRewardService(testDb)

	reward := &models.Reward{
		Name:       "Retired Reward",
		Type:       models.RewardTypeVirtualItem,
		Conditions: achievementCondition(),
		IsActive:   false,
	}
	assert.NoError(t, svc.CreateReward(reward))

	reloaded, err := svc.GetReward(reward.ID)
	assert.NoError(t, err)
	assert.False(t, reloaded.IsActive)

	active, err := svc.ListActive()
	assert.NoError(t, err)
	assert.Empty(t, active)
}

func TestClaimInactiveReward(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	reward := createTestReward(t, 10, achievementCondition(), false, false)

	_, err := NewRewardService(testDb).Claim(user.ID, reward.ID)
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "REWARD_INACTIVE", svcErr.Code)
	assert.Equal(t, 400, svcErr.Status)
}

func TestClaimInsufficientPoints(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	reward := createTestReward(t, 100, achievementCondition(), true, false)

	_, err := NewRewardService(testDb).Claim(user.ID, reward.ID)
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "INSUFFICIENT_POINTS", svcErr.Code)
}

func TestClaimDeductsPoints(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	giveUserPoints(t, user.ID, 150)
	reward := createTestReward(t, 100, achievementCondition(), true, false)

	claim, err := NewRewardService(testDb).Claim(user.ID, reward.ID)
	assert.NoError(t, err)
	assert.NotNil(t, claim)
	assert.NotEmpty(t, claim.Context["redemption_code"])

	reloaded, _ := NewUserService(testDb).GetUser(user.ID)
	assert.Equal(t, 50, reloaded.AvailablePoints)
	// Lifetime points are untouched by spending.
	assert.Equal(t, 150, reloaded.TotalPoints)
}

func TestClaimNonRepeatableOnce(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	giveUserPoints(t, user.ID, 500)
	reward := createTestReward(t, 100, achievementCondition(), true, false)
	svc := NewRewardService(testDb)

	_, err := svc.Claim(user.ID, reward.ID)
	assert.NoError(t, err)

	_, err = svc.Claim(user.ID, reward.ID)
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "REWARD_ALREADY_CLAIMED", svcErr.Code)
	assert.Equal(t, 409, svcErr.Status)
}

func TestClaimRepeatable(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	giveUserPoints(t, user.ID, 500)
	reward := createTestReward(t, 100, achievementCondition(), true, true)
	svc := NewRewardService(testDb)

	_, err := svc.Claim(user.ID, reward.ID)
	assert.NoError(t, err)
	_, err = svc.Claim(user.ID, reward.ID)
	assert.NoError(t, err)

	reloaded, _ := NewUserService(testDb).GetUser(user.ID)
	assert.Equal(t, 300, reloaded.AvailablePoints)
}

func TestClaimLevelCondition(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	giveUserPoints(t, user.ID, 100)
	reward := createTestReward(t, 0, models.RewardConditions{
		Type:         models.ConditionLevel,
		Requirements: models.ConditionRequirements{MinLevel: 5},
	}, true, false)
	svc := NewRewardService(testDb)

	_, err := svc.Claim(user.ID, reward.ID)
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "CONDITIONS_NOT_MET", svcErr.Code)

	testDb.Model(&models.User{}).Where("id = ?", user.ID).Update("level", 5)
	_, err = svc.Claim(user.ID, reward.ID)
	assert.NoError(t, err)
}

func TestClaimBadgeCondition(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	badge := createTestBadge(t, models.BadgeCriteria{Type: models.CriteriaLevel, Target: 1}, 0)
	reward := createTestReward(t, 0, models.RewardConditions{
		Type:         models.ConditionBadges,
		Requirements: models.ConditionRequirements{BadgeIDs: []uint{badge.ID}},
	}, true, false)
	svc := NewRewardService(testDb)

	_, err := svc.Claim(user.ID, reward.ID)
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "CONDITIONS_NOT_MET", svcErr.Code)

	_, err = NewBadgeService(testDb).Award(user.ID, badge.ID, nil)
	assert.NoError(t, err)

	_, err = svc.Claim(user.ID, reward.ID)
	assert.NoError(t, err)
}

func TestDeactivateUserReward(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "athlete@example.com", models.RoleUser)
	reward := createTestReward(t, 0, achievementCondition(), true, false)
	svc := NewRewardService(testDb)

	_, err := svc.Claim(user.ID, reward.ID)
	assert.NoError(t, err)

	assert.NoError(t, svc.DeactivateUserReward(user.ID, reward.ID))

	// The claim row survives, flagged inactive.
	claims, err := svc.UserRewards(user.ID)
	assert.NoError(t, err)
	assert.Len(t, claims, 1)
	assert.False(t, claims[0].IsActive)

	err = svc.DeactivateUserReward(user.ID, reward.ID)
	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "CLAIM_NOT_FOUND", svcErr.Code)
}
