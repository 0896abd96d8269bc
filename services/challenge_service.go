// services/challenge_service.go - Challenge CRUD, ownership rules and discovery
package services

import (
	"log"
	"sort"
	"strings"

	"fitarena/models"
	"fitarena/repositories"

	"gorm.io/gorm"
)

type ChallengeService struct {
	challenges     *repositories.ChallengeRepository
	gyms           *repositories.GymRepository
	participations *repositories.ParticipationRepository
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{
		challenges:     repositories.NewChallengeRepository(db),
		gyms:           repositories.NewGymRepository(db),
		participations: repositories.NewParticipationRepository(db),
	}
}

type ChallengeInput struct {
	Name                 string `json:"name"`
	Description          string `json:"description"`
	Objectives           string `json:"objectives"`
	RecommendedExercises string `json:"recommended_exercises"`
	Duration             int    `json:"duration"`
	Difficulty           string `json:"difficulty"`
	Score                int    `json:"score"`
	IsPublic             *bool  `json:"is_public"`
	Type                 string `json:"type"`
}

// ================== CREATION ==================

// CreateUserChallenge creates a community challenge owned by the caller.
func (s *ChallengeService) CreateUserChallenge(creatorID uint, input ChallengeInput) (*models.Challenge, error) {
	challenge := s.buildChallenge(input)
	challenge.CreatorType = models.CreatorTypeUser
	challenge.CreatorID = &creatorID

	if err := s.challenges.Create(challenge); err != nil {
		return nil, err
	}
	log.Printf("✅ User %d created challenge %d", creatorID, challenge.ID)
	return challenge, nil
}

// CreateGymChallenge creates a challenge on behalf of the caller's gym. The
// caller must own the gym and the gym must be approved.
func (s *ChallengeService) CreateGymChallenge(callerID, gymID uint, input ChallengeInput) (*models.Challenge, error) {
	gym, err := s.gyms.FindByID(gymID)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		return nil, NotFound("gym not found", "GYM_NOT_FOUND")
	}
	if gym.OwnerID != callerID {
		return nil, Forbidden("you do not own this gym", "GYM_NOT_OWNED")
	}
	if gym.Status != models.GymStatusApproved {
		return nil, Forbidden("gym is not approved", "GYM_NOT_APPROVED")
	}

	taken, err := s.challenges.ExistsByGymAndName(gymID, input.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Conflict("this gym already has a challenge with that name", "CHALLENGE_DUPLICATE")
	}

	challenge := s.buildChallenge(input)
	challenge.CreatorType = models.CreatorTypeGym
	challenge.GymID = &gymID

	if err := s.challenges.Create(challenge); err != nil {
		return nil, err
	}
	log.Printf("✅ Gym %d published challenge %d", gymID, challenge.ID)
	return challenge, nil
}

func (s *ChallengeService) buildChallenge(input ChallengeInput) *models.Challenge {
	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}
	return &models.Challenge{
		Name:                 input.Name,
		Description:          input.Description,
		Objectives:           input.Objectives,
		RecommendedExercises: input.RecommendedExercises,
		Duration:             input.Duration,
		Difficulty:           input.Difficulty,
		Score:                input.Score,
		IsPublic:             isPublic,
		Type:                 input.Type,
	}
}

// ================== READ ==================

func (s *ChallengeService) GetChallenge(id uint) (*models.Challenge, error) {
	challenge, err := s.challenges.FindByID(id)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, NotFound("challenge not found", "CHALLENGE_NOT_FOUND")
	}
	return challenge, nil
}

func (s *ChallengeService) ListGymChallenges(gymID uint) ([]models.Challenge, error) {
	return s.challenges.FindByGym(gymID)
}

func (s *ChallengeService) ListUserChallenges(creatorID uint) ([]models.Challenge, error) {
	return s.challenges.FindByCreator(creatorID)
}

func (s *ChallengeService) Explore(filter repositories.ChallengeFilter) ([]models.Challenge, error) {
	public := true
	filter.IsPublic = &public
	return s.challenges.FindWithFilters(filter)
}

// Trending orders public challenges by participation count.
func (s *ChallengeService) Trending(limit int) ([]models.Challenge, error) {
	public := true
	challenges, err := s.challenges.FindWithFilters(repositories.ChallengeFilter{IsPublic: &public})
	if err != nil {
		return nil, err
	}
	if len(challenges) == 0 {
		return challenges, nil
	}

	ids := make([]uint, len(challenges))
	for i, c := range challenges {
		ids[i] = c.ID
	}
	counts, err := s.challenges.CountParticipants(ids)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(challenges, func(i, j int) bool {
		return counts[challenges[i].ID] > counts[challenges[j].ID]
	})
	if limit > 0 && len(challenges) > limit {
		challenges = challenges[:limit]
	}
	return challenges, nil
}

// Recommended suggests public challenges the user has not started yet,
// preferring ones matching the difficulty of challenges they completed.
func (s *ChallengeService) Recommended(userID uint, limit int) ([]models.Challenge, error) {
	public := true
	challenges, err := s.challenges.FindWithFilters(repositories.ChallengeFilter{IsPublic: &public})
	if err != nil {
		return nil, err
	}

	mine, err := s.participations.FindByUser(userID, "")
	if err != nil {
		return nil, err
	}
	started := make(map[uint]bool, len(mine))
	difficulties := make(map[string]int)
	for _, p := range mine {
		started[p.ChallengeID] = true
		if p.Status == models.ParticipationCompleted && p.Challenge != nil {
			difficulties[p.Challenge.Difficulty]++
		}
	}

	var candidates []models.Challenge
	for _, c := range challenges {
		if !started[c.ID] {
			candidates = append(candidates, c)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return difficulties[candidates[i].Difficulty] > difficulties[candidates[j].Difficulty]
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

func (s *ChallengeService) Search(term string, filter repositories.ChallengeFilter) ([]models.Challenge, error) {
	filter.Search = strings.TrimSpace(term)
	public := true
	filter.IsPublic = &public
	return s.challenges.FindWithFilters(filter)
}

// ================== MUTATION ==================

// UpdateChallenge edits a challenge after an ownership check. User challenges
// are editable by their creator, gym challenges by the owning gym's owner.
func (s *ChallengeService) UpdateChallenge(challengeID, callerID uint, callerRole string, updates map[string]interface{}) (*models.Challenge, error) {
	challenge, err := s.GetChallenge(challengeID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(challenge, callerID, callerRole); err != nil {
		return nil, err
	}
	delete(updates, "creator_type")
	delete(updates, "creator_id")
	delete(updates, "gym_id")
	return s.challenges.Update(challengeID, updates)
}

func (s *ChallengeService) DeleteChallenge(challengeID, callerID uint, callerRole string) error {
	challenge, err := s.GetChallenge(challengeID)
	if err != nil {
		return err
	}
	if err := s.authorize(challenge, callerID, callerRole); err != nil {
		return err
	}
	_, err = s.challenges.Delete(challengeID)
	return err
}

func (s *ChallengeService) authorize(challenge *models.Challenge, callerID uint, callerRole string) error {
	if callerRole == models.RoleAdmin {
		return nil
	}
	switch challenge.CreatorType {
	case models.CreatorTypeUser:
		if challenge.CreatorID != nil && *challenge.CreatorID == callerID {
			return nil
		}
	case models.CreatorTypeGym:
		if callerRole != models.RoleGymOwner || challenge.GymID == nil {
			break
		}
		gym, err := s.gyms.FindByID(*challenge.GymID)
		if err != nil {
			return err
		}
		if gym != nil && gym.OwnerID == callerID {
			return nil
		}
	}
	return Forbidden("you cannot modify this challenge", "CHALLENGE_UNAUTHORIZED")
}
