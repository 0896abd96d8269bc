// repositories/user_repository.go
package repositories

import (
	"errors"
	"strings"

	"fitarena/models"

	"gorm.io/gorm"
)

type UserFilter struct {
	Role     string
	IsActive *bool
	Search   string
	Limit    int
	Offset   int
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindMany(filter UserFilter) ([]models.User, error) {
	query := r.db.Model(&models.User{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var users []models.User
	err := query.Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.User{}).Count(&total).Error
	return total, err
}

func (r *UserRepository) Update(id uint, updates map[string]interface{}) (*models.User, error) {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *UserRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.User{}, id)
	return result.RowsAffected > 0, result.Error
}

// AddPoints applies point/XP deltas as a single increment statement so that
// concurrent awards never lose updates.
func (r *UserRepository) AddPoints(id uint, totalDelta, availableDelta, xpDelta int) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_points":      gorm.Expr("total_points + ?", totalDelta),
		"available_points":  gorm.Expr("available_points + ?", availableDelta),
		"experience_points": gorm.Expr("experience_points + ?", xpDelta),
	}).Error
}

// DeductAvailablePoints performs a conditional decrement and reports whether
// the balance was sufficient. The check and the write are one statement.
func (r *UserRepository) DeductAvailablePoints(id uint, cost int) (bool, error) {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND available_points >= ?", id, cost).
		Update("available_points", gorm.Expr("available_points - ?", cost))
	return result.RowsAffected > 0, result.Error
}

func (r *UserRepository) SetLevel(id uint, level, xp int) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"level":             level,
		"experience_points": xp,
	}).Error
}
