// repositories/exercise_repository.go
package repositories

import (
	"errors"
	"strings"

	"fitarena/models"

	"gorm.io/gorm"
)

type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(exercise *models.Exercise) error {
	return r.db.Create(exercise).Error
}

func (r *ExerciseRepository) FindByID(id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := r.db.First(&exercise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepository) FindAll() ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.Order("name").Find(&exercises).Error
	return exercises, err
}

func (r *ExerciseRepository) Search(term string) ([]models.Exercise, error) {
	like := "%" + strings.ToLower(term) + "%"
	var exercises []models.Exercise
	err := r.db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like).
		Order("name").Find(&exercises).Error
	return exercises, err
}

func (r *ExerciseRepository) Update(id uint, updates map[string]interface{}) (*models.Exercise, error) {
	result := r.db.Model(&models.Exercise{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *ExerciseRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Exercise{}, id)
	return result.RowsAffected > 0, result.Error
}
