// database/seed.go - Default catalog data and admin account
package database

import (
	"log"
	"os"

	"fitarena/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedDefaults inserts the default badge/reward/exercise catalogs and an
// admin account when the corresponding tables are empty. Safe to call on
// every startup.
func SeedDefaults() error {
	if err := seedAdmin(); err != nil {
		return err
	}
	if err := seedBadges(); err != nil {
		return err
	}
	if err := seedRewards(); err != nil {
		return err
	}
	return seedExercises()
}

func seedAdmin() error {
	db := GetDB()

	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		// Random throwaway password; operators set ADMIN_PASSWORD for real use.
		password = uuid.New().String()
		log.Printf("⚠️  ADMIN_PASSWORD not set, generated admin password: %s", password)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		FullName: "FitArena Admin",
		Email:    getEnvOrDefault("ADMIN_EMAIL", "admin@fitarena.local"),
		Password: string(hash),
		Role:     models.RoleAdmin,
		IsActive: true,
		Level:    1,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("✅ Admin account seeded")
	return nil
}

func seedBadges() error {
	db := GetDB()

	var count int64
	db.Model(&models.Badge{}).Count(&count)
	if count > 0 {
		return nil
	}

	badges := []models.Badge{
		{
			Name: "First Challenge", Description: "Complete your first training challenge",
			Icon: "🎯", Color: "#4CAF50", Type: models.BadgeTypeMilestone,
			Criteria: models.BadgeCriteria{Type: models.CriteriaChallengesCompleted, Target: 1},
			Points:   25, IsActive: true,
		},
		{
			Name: "Challenger", Description: "Complete 5 training challenges",
			Icon: "💪", Color: "#2196F3", Type: models.BadgeTypeAchievement,
			Criteria: models.BadgeCriteria{Type: models.CriteriaChallengesCompleted, Target: 5},
			Points:   50, IsActive: true,
		},
		{
			Name: "Challenge Champion", Description: "Complete 20 training challenges",
			Icon: "🏆", Color: "#FFD700", Type: models.BadgeTypeAchievement,
			Criteria: models.BadgeCriteria{Type: models.CriteriaChallengesCompleted, Target: 20},
			Points:   150, IsActive: true,
		},
		{
			Name: "First Session", Description: "Log your first training session",
			Icon: "🏃", Color: "#00BCD4", Type: models.BadgeTypeMilestone,
			Criteria: models.BadgeCriteria{Type: models.CriteriaTrainingSessions, Target: 1},
			Points:   10, IsActive: true,
		},
		{
			Name: "Regular Athlete", Description: "Log 10 training sessions",
			Icon: "📈", Color: "#9C27B0", Type: models.BadgeTypeAchievement,
			Criteria: models.BadgeCriteria{Type: models.CriteriaTrainingSessions, Target: 10},
			Points:   50, IsActive: true,
		},
		{
			Name: "Confirmed Athlete", Description: "Log 50 training sessions",
			Icon: "🔥", Color: "#FF5722", Type: models.BadgeTypeAchievement,
			Criteria: models.BadgeCriteria{Type: models.CriteriaTrainingSessions, Target: 50},
			Points:   200, IsActive: true,
		},
		{
			Name: "Weekly Warrior", Description: "Log 5 sessions in one week",
			Icon: "⚡", Color: "#FFC107", Type: models.BadgeTypeSpecial,
			Criteria: models.BadgeCriteria{Type: models.CriteriaTrainingSessions, Target: 5, Period: "week"},
			Points:   75, IsActive: true,
		},
		{
			Name: "Calorie Burner", Description: "Burn 10000 calories in total",
			Icon: "🔥", Color: "#E91E63", Type: models.BadgeTypeAchievement,
			Criteria: models.BadgeCriteria{Type: models.CriteriaCaloriesBurned, Target: 10000},
			Points:   100, IsActive: true,
		},
		{
			Name: "Level 5", Description: "Reach level 5",
			Icon: "⭐", Color: "#3F51B5", Type: models.BadgeTypeMilestone,
			Criteria: models.BadgeCriteria{Type: models.CriteriaLevel, Target: 5},
			Points:   100, IsActive: true,
		},
		{
			Name: "Streak Week", Description: "Train 7 days in a row",
			Icon: "📅", Color: "#009688", Type: models.BadgeTypeSpecial,
			Criteria: models.BadgeCriteria{Type: models.CriteriaStreak, Target: 7},
			Points:   125, IsActive: true,
		},
	}

	if err := db.Create(&badges).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d badges", len(badges))
	return nil
}

func seedRewards() error {
	db := GetDB()

	var count int64
	db.Model(&models.Reward{}).Count(&count)
	if count > 0 {
		return nil
	}

	rewards := []models.Reward{
		{
			Name: "Title: Challenger", Description: "Display \"Challenger\" on your profile",
			Icon: "🏷️", Type: models.RewardTypeTitle,
			Conditions: models.RewardConditions{
				Type:         models.ConditionBadges,
				Requirements: models.ConditionRequirements{MinBadges: 3},
			},
			PointsCost: 0, IsActive: true,
		},
		{
			Name: "Title: Champion", Description: "Prestigious title for true challenge champions",
			Icon: "👑", Type: models.RewardTypeTitle,
			Conditions: models.RewardConditions{
				Type:         models.ConditionBadges,
				Requirements: models.ConditionRequirements{MinBadges: 5},
			},
			PointsCost: 0, IsActive: true,
		},
		{
			Name: "Athlete Avatar", Description: "Unlock a special profile avatar",
			Icon: "🏃‍♂️", Type: models.RewardTypeVirtualItem,
			Conditions: models.RewardConditions{
				Type:         models.ConditionBadges,
				Requirements: models.ConditionRequirements{MinBadges: 2},
			},
			PointsCost: 50, IsActive: true,
		},
		{
			Name: "Virtual Medal", Description: "Achievement medal to display",
			Icon: "🥇", Type: models.RewardTypeVirtualItem,
			Conditions: models.RewardConditions{
				Type:         models.ConditionLevel,
				Requirements: models.ConditionRequirements{MinLevel: 3},
			},
			PointsCost: 100, IsActive: true,
		},
		{
			Name: "Certificate of Merit", Description: "Virtual certificate of your athletic accomplishments",
			Icon: "📜", Type: models.RewardTypeVirtualItem,
			Conditions: models.RewardConditions{
				Type:         models.ConditionPoints,
				Requirements: models.ConditionRequirements{MinTotalPoints: 500},
			},
			PointsCost: 200, IsActive: true,
		},
	}

	if err := db.Create(&rewards).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d rewards", len(rewards))
	return nil
}

func seedExercises() error {
	db := GetDB()

	var count int64
	db.Model(&models.Exercise{}).Count(&count)
	if count > 0 {
		return nil
	}

	exercises := []models.Exercise{
		{Name: "Push-ups", Description: "Bodyweight staple for upper-body strength. Works chest, triceps and front delts.", Muscles: models.StringList{"chest", "triceps", "deltoids"}},
		{Name: "Pull-ups", Description: "Back and biceps builder, overhand or underhand grip.", Muscles: models.StringList{"lats", "biceps", "rhomboids", "traps"}},
		{Name: "Dumbbell Bench Press", Description: "Chest development with a more natural movement path than the barbell.", Muscles: models.StringList{"chest", "triceps", "front deltoids"}},
		{Name: "Dumbbell Row", Description: "Thickens the back and improves posture, performed bent over.", Muscles: models.StringList{"lats", "rhomboids", "mid traps", "biceps"}},
		{Name: "Overhead Press", Description: "Shoulder staple building functional upper-body strength.", Muscles: models.StringList{"deltoids", "triceps", "upper traps"}},
		{Name: "Dips", Description: "Bodyweight exercise for triceps and lower chest.", Muscles: models.StringList{"triceps", "lower chest", "front deltoids"}},
		{Name: "Squats", Description: "Foundation of lower-body training, hits legs and glutes.", Muscles: models.StringList{"quadriceps", "glutes", "hamstrings", "calves"}},
		{Name: "Lunges", Description: "Unilateral leg work for balance and even development.", Muscles: models.StringList{"quadriceps", "glutes", "hamstrings"}},
		{Name: "Deadlift", Description: "Full posterior-chain movement, the king of strength work.", Muscles: models.StringList{"hamstrings", "glutes", "lats", "traps", "forearms"}},
		{Name: "Plank", Description: "Isometric core hold building trunk stability.", Muscles: models.StringList{"abs", "obliques", "lower back"}},
		{Name: "Burpees", Description: "Full-body conditioning movement combining squat, plank and jump.", Muscles: models.StringList{"full body"}},
		{Name: "Mountain Climbers", Description: "Dynamic core and cardio exercise from a plank position.", Muscles: models.StringList{"abs", "hip flexors", "shoulders"}},
	}

	if err := db.Create(&exercises).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d exercises", len(exercises))
	return nil
}
