// repositories/invitation_repository.go
package repositories

import (
	"errors"

	"fitarena/models"

	"gorm.io/gorm"
)

type InvitationStats struct {
	Sent     int64 `json:"sent"`
	Received int64 `json:"received"`
	Accepted int64 `json:"accepted"`
	Declined int64 `json:"declined"`
	Pending  int64 `json:"pending"`
}

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(inv *models.ChallengeInvitation) error {
	return r.db.Create(inv).Error
}

func (r *InvitationRepository) FindByID(id uint) (*models.ChallengeInvitation, error) {
	var inv models.ChallengeInvitation
	if err := r.db.First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *InvitationRepository) FindExisting(inviterID, inviteeID, challengeID uint) (*models.ChallengeInvitation, error) {
	var inv models.ChallengeInvitation
	err := r.db.Where("inviter_id = ? AND invitee_id = ? AND challenge_id = ?",
		inviterID, inviteeID, challengeID).First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *InvitationRepository) FindSent(inviterID uint) ([]models.ChallengeInvitation, error) {
	var list []models.ChallengeInvitation
	err := r.db.Preload("Invitee").Preload("Challenge").
		Where("inviter_id = ?", inviterID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *InvitationRepository) FindReceived(inviteeID uint) ([]models.ChallengeInvitation, error) {
	var list []models.ChallengeInvitation
	err := r.db.Preload("Inviter").Preload("Challenge").
		Where("invitee_id = ?", inviteeID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *InvitationRepository) UpdateStatus(id uint, status string) (*models.ChallengeInvitation, error) {
	result := r.db.Model(&models.ChallengeInvitation{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindByID(id)
}

func (r *InvitationRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.ChallengeInvitation{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *InvitationRepository) StatsFor(userID uint) (*InvitationStats, error) {
	stats := &InvitationStats{}
	count := func(dest *int64, query string, args ...interface{}) error {
		return r.db.Model(&models.ChallengeInvitation{}).Where(query, args...).Count(dest).Error
	}

	if err := count(&stats.Sent, "inviter_id = ?", userID); err != nil {
		return nil, err
	}
	if err := count(&stats.Received, "invitee_id = ?", userID); err != nil {
		return nil, err
	}
	if err := count(&stats.Accepted, "invitee_id = ? AND status = ?", userID, models.InvitationAccepted); err != nil {
		return nil, err
	}
	if err := count(&stats.Declined, "invitee_id = ? AND status = ?", userID, models.InvitationDeclined); err != nil {
		return nil, err
	}
	if err := count(&stats.Pending, "invitee_id = ? AND status = ?", userID, models.InvitationPending); err != nil {
		return nil, err
	}
	return stats, nil
}
