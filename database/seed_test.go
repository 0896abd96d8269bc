package database

import (
	"log"
	"os"
	"testing"

	"fitarena/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	testDb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to open test database: %s", err)
	}

	if err := testDb.AutoMigrate(
		&models.User{},
		&models.Badge{},
		&models.Reward{},
		&models.Exercise{},
	); err != nil {
		log.Fatalf("failed to migrate test database: %s", err)
	}
	SetDB(testDb)

	os.Exit(m.Run())
}

func TestSeedDefaults(t *testing.T) {
	assert.NoError(t, SeedDefaults())

	var admins, badges, rewards, exercises int64
	GetDB().Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins)
	GetDB().Model(&models.Badge{}).Count(&badges)
	GetDB().Model(&models.Reward{}).Count(&rewards)
	GetDB().Model(&models.Exercise{}).Count(&exercises)
	assert.Equal(t, int64(1), admins)
	assert.NotZero(t, badges)
	assert.NotZero(t, rewards)
	assert.NotZero(t, exercises)

	// Seeding again is a no-op.
	assert.NoError(t, SeedDefaults())
	var badgesAgain int64
	GetDB().Model(&models.Badge{}).Count(&badgesAgain)
	assert.Equal(t, badges, badgesAgain)
}
