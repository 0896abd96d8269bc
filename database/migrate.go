// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"fitarena/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Gym{},
		&models.Challenge{},
		&models.ChallengeParticipation{},
		&models.ChallengeInvitation{},
		&models.GroupChallenge{},
		&models.GroupChallengeParticipant{},
		&models.TrainingSession{},
		&models.Badge{},
		&models.UserBadge{},
		&models.Reward{},
		&models.UserReward{},
		&models.Exercise{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()
	createConstraints()

	log.Println("✅ All migrations completed successfully")
}

func createIndexes() {
	db := GetDB()

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_total_points ON users(total_points DESC)")

	// Challenge indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenges_public ON challenges(is_public)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenges_difficulty ON challenges(difficulty)")

	// Training session indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_training_sessions_user_date ON training_sessions(user_id, date DESC)")

	// Invitation indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_invitations_status ON challenge_invitations(status)")
}

// createConstraints adds the rules the application also enforces in model
// hooks, so a misbehaving writer cannot break them at the database level.
func createConstraints() {
	db := GetDB()

	// A challenge is created by exactly one of a user or a gym.
	db.Exec(`ALTER TABLE challenges ADD CONSTRAINT chk_challenges_creator CHECK (
		(creator_type = 'user' AND creator_id IS NOT NULL AND gym_id IS NULL) OR
		(creator_type = 'gym' AND gym_id IS NOT NULL AND creator_id IS NULL)
	)`)
}
