// repositories/training_repository.go
package repositories

import (
	"errors"
	"time"

	"fitarena/models"

	"gorm.io/gorm"
)

type TrainingFilter struct {
	ChallengeID *uint
	DateFrom    *time.Time
	DateTo      *time.Time
	MinDuration int
	MaxDuration int
	Limit       int
	Offset      int
}

// TrainingTotals aggregates a user's sessions in one scan.
type TrainingTotals struct {
	TotalSessions int64
	TotalDuration int64
	TotalCalories int64
}

type TrainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

func (r *TrainingRepository) Create(session *models.TrainingSession) error {
	return r.db.Create(session).Error
}

func (r *TrainingRepository) FindByID(id uint) (*models.TrainingSession, error) {
	var session models.TrainingSession
	if err := r.db.First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *TrainingRepository) FindByUser(userID uint, filter TrainingFilter) ([]models.TrainingSession, error) {
	query := r.db.Where("user_id = ?", userID)

	if filter.ChallengeID != nil {
		query = query.Where("challenge_id = ?", *filter.ChallengeID)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}
	if filter.MinDuration > 0 {
		query = query.Where("duration >= ?", filter.MinDuration)
	}
	if filter.MaxDuration > 0 {
		query = query.Where("duration <= ?", filter.MaxDuration)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var sessions []models.TrainingSession
	err := query.Order("date DESC").Find(&sessions).Error
	return sessions, err
}

func (r *TrainingRepository) Update(id uint, updates map[string]interface{}) (*models.TrainingSession, error) {
	result := r.db.Model(&models.TrainingSession{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *TrainingRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.TrainingSession{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *TrainingRepository) TotalsFor(userID uint) (*TrainingTotals, error) {
	totals := &TrainingTotals{}
	err := r.db.Model(&models.TrainingSession{}).
		Select("COUNT(*) as total_sessions, COALESCE(SUM(duration), 0) as total_duration, COALESCE(SUM(calories_burned), 0) as total_calories").
		Where("user_id = ?", userID).
		Scan(totals).Error
	return totals, err
}

func (r *TrainingRepository) CountSince(userID uint, since time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&models.TrainingSession{}).
		Where("user_id = ? AND date >= ?", userID, since).
		Count(&total).Error
	return total, err
}

// SessionDates returns session dates for a user within a window, newest
// first. Streak computation works over these.
func (r *TrainingRepository) SessionDates(userID uint, since time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.Model(&models.TrainingSession{}).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Pluck("date", &dates).Error
	return dates, err
}

func (r *TrainingRepository) SumCalories(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.TrainingSession{}).
		Select("COALESCE(SUM(calories_burned), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	return total, err
}

func (r *TrainingRepository) CountByUser(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.TrainingSession{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}
