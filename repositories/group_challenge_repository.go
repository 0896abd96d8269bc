// repositories/group_challenge_repository.go
package repositories

import (
	"errors"
	"time"

	"fitarena/models"

	"gorm.io/gorm"
)

type GroupChallengeRepository struct {
	db *gorm.DB
}

func NewGroupChallengeRepository(db *gorm.DB) *GroupChallengeRepository {
	return &GroupChallengeRepository{db: db}
}

// CreateWithCreator inserts the group and its creator's membership in one
// transaction so a group can never exist without its creator inside it.
func (r *GroupChallengeRepository) CreateWithCreator(group *models.GroupChallenge) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		member := models.GroupChallengeParticipant{
			GroupChallengeID: group.ID,
			UserID:           group.CreatedBy,
			JoinedAt:         time.Now(),
		}
		return tx.Create(&member).Error
	})
}

func (r *GroupChallengeRepository) FindByID(id uint) (*models.GroupChallenge, error) {
	var group models.GroupChallenge
	err := r.db.Preload("Participants").Preload("Challenge").First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *GroupChallengeRepository) FindByUser(userID uint) ([]models.GroupChallenge, error) {
	var groups []models.GroupChallenge
	err := r.db.Preload("Participants").Preload("Challenge").
		Joins("JOIN group_challenge_participants gcp ON gcp.group_challenge_id = group_challenges.id").
		Where("gcp.user_id = ?", userID).
		Order("group_challenges.created_at DESC").
		Find(&groups).Error
	return groups, err
}

func (r *GroupChallengeRepository) IsMember(groupID, userID uint) (bool, error) {
	var total int64
	err := r.db.Model(&models.GroupChallengeParticipant{}).
		Where("group_challenge_id = ? AND user_id = ?", groupID, userID).
		Count(&total).Error
	return total > 0, err
}

func (r *GroupChallengeRepository) AddMember(groupID, userID uint) (*models.GroupChallengeParticipant, error) {
	member := &models.GroupChallengeParticipant{
		GroupChallengeID: groupID,
		UserID:           userID,
		JoinedAt:         time.Now(),
	}
	if err := r.db.Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}
