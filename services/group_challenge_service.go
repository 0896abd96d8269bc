// services/group_challenge_service.go - Group challenges and membership
package services

import (
	"log"

	"fitarena/models"
	"fitarena/repositories"

	"gorm.io/gorm"
)

type GroupChallengeService struct {
	groups     *repositories.GroupChallengeRepository
	challenges *repositories.ChallengeRepository
}

func NewGroupChallengeService(db *gorm.DB) *GroupChallengeService {
	return &GroupChallengeService{
		groups:     repositories.NewGroupChallengeRepository(db),
		challenges: repositories.NewChallengeRepository(db),
	}
}

// CreateGroup opens a group on a challenge. The creator joins automatically.
func (s *GroupChallengeService) CreateGroup(creatorID, challengeID uint, groupName string) (*models.GroupChallenge, error) {
	challenge, err := s.challenges.FindByID(challengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, NotFound("challenge not found", "CHALLENGE_NOT_FOUND")
	}

	group := &models.GroupChallenge{
		ChallengeID: challengeID,
		GroupName:   groupName,
		CreatedBy:   creatorID,
	}
	if err := s.groups.CreateWithCreator(group); err != nil {
		return nil, err
	}
	log.Printf("✅ User %d created group %d on challenge %d", creatorID, group.ID, challengeID)
	return s.groups.FindByID(group.ID)
}

// Join adds the caller to a group. Joining twice is rejected.
func (s *GroupChallengeService) Join(groupID, userID uint) (*models.GroupChallengeParticipant, error) {
	group, err := s.groups.FindByID(groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, NotFound("group challenge not found", "GROUP_NOT_FOUND")
	}

	member, err := s.groups.IsMember(groupID, userID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, Conflict("already a member of this group", "ALREADY_JOINED")
	}

	return s.groups.AddMember(groupID, userID)
}

func (s *GroupChallengeService) GetGroup(groupID uint) (*models.GroupChallenge, error) {
	group, err := s.groups.FindByID(groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, NotFound("group challenge not found", "GROUP_NOT_FOUND")
	}
	return group, nil
}

func (s *GroupChallengeService) MyGroups(userID uint) ([]models.GroupChallenge, error) {
	return s.groups.FindByUser(userID)
}
