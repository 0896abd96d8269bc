// services/exercise_service.go
package services

import (
	"fitarena/models"
	"fitarena/repositories"

	"gorm.io/gorm"
)

type ExerciseService struct {
	exercises *repositories.ExerciseRepository
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{exercises: repositories.NewExerciseRepository(db)}
}

func (s *ExerciseService) List(search string) ([]models.Exercise, error) {
	if search != "" {
		return s.exercises.Search(search)
	}
	return s.exercises.FindAll()
}

func (s *ExerciseService) Get(id uint) (*models.Exercise, error) {
	exercise, err := s.exercises.FindByID(id)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, NotFound("exercise not found", "EXERCISE_NOT_FOUND")
	}
	return exercise, nil
}

func (s *ExerciseService) Create(exercise *models.Exercise) error {
	return s.exercises.Create(exercise)
}

func (s *ExerciseService) Update(id uint, updates map[string]interface{}) (*models.Exercise, error) {
	exercise, err := s.exercises.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, NotFound("exercise not found", "EXERCISE_NOT_FOUND")
	}
	return exercise, nil
}

func (s *ExerciseService) Delete(id uint) error {
	deleted, err := s.exercises.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return NotFound("exercise not found", "EXERCISE_NOT_FOUND")
	}
	return nil
}
