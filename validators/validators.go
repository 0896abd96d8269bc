// validators/validators.go - Request shape validation
//
// Validators check field presence and bounds only. State-dependent rules
// (ownership, status transitions, balances) live in the services.
package validators

import (
	"strings"
	"time"

	"fitarena/services"
)

// ================== AUTH ==================

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func ValidateRegister(req *RegisterRequest) *services.ServiceError {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)

	if req.FullName == "" {
		return services.Unprocessable("full name is required", "INVALID_FULL_NAME")
	}
	if !strings.Contains(req.Email, "@") || len(req.Email) < 5 {
		return services.Unprocessable("a valid email is required", "INVALID_EMAIL")
	}
	if len(req.Password) < 8 {
		return services.Unprocessable("password must be at least 8 characters", "INVALID_PASSWORD")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func ValidateLogin(req *LoginRequest) *services.ServiceError {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		return services.Unprocessable("email and password are required", "INVALID_CREDENTIALS_FORMAT")
	}
	return nil
}

// ================== CHALLENGES ==================

// ValidateUserChallenge applies the community challenge bounds.
func ValidateUserChallenge(input *services.ChallengeInput) *services.ServiceError {
	input.Name = strings.TrimSpace(input.Name)

	if len(input.Name) < 3 {
		return services.Unprocessable("challenge name must be at least 3 characters", "INVALID_CHALLENGE_NAME")
	}
	if len(strings.TrimSpace(input.Description)) < 10 {
		return services.Unprocessable("description must be at least 10 characters", "INVALID_CHALLENGE_DESCRIPTION")
	}
	if len(strings.TrimSpace(input.Objectives)) < 5 {
		return services.Unprocessable("objectives must be at least 5 characters", "INVALID_CHALLENGE_OBJECTIVES")
	}
	if input.Duration < 1 {
		return services.Unprocessable("duration must be at least 1 day", "INVALID_CHALLENGE_DURATION")
	}
	if input.Score < 0 {
		return services.Unprocessable("score cannot be negative", "INVALID_CHALLENGE_SCORE")
	}
	return nil
}

// ValidateGymChallenge applies the looser gym challenge bounds.
func ValidateGymChallenge(input *services.ChallengeInput) *services.ServiceError {
	input.Name = strings.TrimSpace(input.Name)

	if len(input.Name) < 2 {
		return services.Unprocessable("challenge name must be at least 2 characters", "INVALID_CHALLENGE_NAME")
	}
	if input.Score < 0 {
		return services.Unprocessable("score cannot be negative", "INVALID_CHALLENGE_SCORE")
	}
	return nil
}

// ================== GYMS ==================

func ValidateGym(input *services.GymInput) *services.ServiceError {
	input.Name = strings.TrimSpace(input.Name)
	input.Contact = strings.TrimSpace(input.Contact)

	if len(input.Name) < 2 {
		return services.Unprocessable("gym name must be at least 2 characters", "INVALID_GYM_NAME")
	}
	if input.Contact == "" {
		return services.Unprocessable("contact is required", "INVALID_GYM_CONTACT")
	}
	return nil
}

// ================== TRAINING ==================

const (
	maxSessionMinutes  = 1440
	maxSessionCalories = 10000
)

func ValidateTraining(input *services.TrainingInput) *services.ServiceError {
	if input.Date.IsZero() {
		return services.Unprocessable("date is required", "INVALID_SESSION_DATE")
	}
	if input.Date.After(time.Now().Add(24 * time.Hour)) {
		return services.Unprocessable("date cannot be in the future", "INVALID_SESSION_DATE")
	}
	if input.Duration < 1 || input.Duration > maxSessionMinutes {
		return services.Unprocessable("duration must be between 1 and 1440 minutes", "INVALID_SESSION_DURATION")
	}
	if input.CaloriesBurned < 0 || input.CaloriesBurned > maxSessionCalories {
		return services.Unprocessable("calories must be between 0 and 10000", "INVALID_SESSION_CALORIES")
	}
	return nil
}

// ================== GROUPS ==================

func ValidateGroupName(name string) *services.ServiceError {
	if len(strings.TrimSpace(name)) < 2 {
		return services.Unprocessable("group name must be at least 2 characters", "INVALID_GROUP_NAME")
	}
	return nil
}
