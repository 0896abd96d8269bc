package validators

import (
	"testing"
	"time"

	"fitarena/services"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	req := &RegisterRequest{FullName: "  Jane Runner ", Email: " JANE@Example.com ", Password: "supersecret"}
	assert.Nil(t, ValidateRegister(req))
	assert.Equal(t, "Jane Runner", req.FullName)
	assert.Equal(t, "jane@example.com", req.Email)

	cases := []struct {
		req  RegisterRequest
		code string
	}{
		{RegisterRequest{Email: "jane@example.com", Password: "supersecret"}, "INVALID_FULL_NAME"},
		{RegisterRequest{FullName: "Jane", Email: "not-an-email", Password: "supersecret"}, "INVALID_EMAIL"},
		{RegisterRequest{FullName: "Jane", Email: "jane@example.com", Password: "short"}, "INVALID_PASSWORD"},
	}
	for _, tc := range cases {
		err := ValidateRegister(&tc.req)
		assert.NotNil(t, err)
		assert.Equal(t, tc.code, err.Code)
	}
}

func TestValidateLogin(t *testing.T) {
	assert.Nil(t, ValidateLogin(&LoginRequest{Email: "jane@example.com", Password: "pw"}))

	err := ValidateLogin(&LoginRequest{Email: "", Password: "pw"})
	assert.NotNil(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS_FORMAT", err.Code)
}

func TestValidateUserChallenge(t *testing.T) {
	valid := func() *services.ChallengeInput {
		return &services.ChallengeInput{
			Name:        "30 Day Plank",
			Description: "Hold a plank every day for a month",
			Objectives:  "Build core strength",
			Duration:    30,
			Score:       100,
		}
	}
	assert.Nil(t, ValidateUserChallenge(valid()))

	in := valid()
	in.Name = "ab"
	assert.Equal(t, "INVALID_CHALLENGE_NAME", ValidateUserChallenge(in).Code)

	in = valid()
	in.Description = "too short"
	assert.Equal(t, "INVALID_CHALLENGE_DESCRIPTION", ValidateUserChallenge(in).Code)

	in = valid()
	in.Objectives = "abc"
	assert.Equal(t, "INVALID_CHALLENGE_OBJECTIVES", ValidateUserChallenge(in).Code)

	in = valid()
	in.Duration = 0
	assert.Equal(t, "INVALID_CHALLENGE_DURATION", ValidateUserChallenge(in).Code)

	in = valid()
	in.Score = -1
	assert.Equal(t, "INVALID_CHALLENGE_SCORE", ValidateUserChallenge(in).Code)
}

func TestValidateGymChallenge(t *testing.T) {
	assert.Nil(t, ValidateGymChallenge(&services.ChallengeInput{Name: "HIIT", Score: 50}))

	err := ValidateGymChallenge(&services.ChallengeInput{Name: "x"})
	assert.NotNil(t, err)
	assert.Equal(t, "INVALID_CHALLENGE_NAME", err.Code)
}

func TestValidateGym(t *testing.T) {
	assert.Nil(t, ValidateGym(&services.GymInput{Name: "Iron Temple", Contact: "gym@example.com"}))

	err := ValidateGym(&services.GymInput{Name: "Iron Temple"})
	assert.NotNil(t, err)
	assert.Equal(t, "INVALID_GYM_CONTACT", err.Code)

	err = ValidateGym(&services.GymInput{Name: "x", Contact: "gym@example.com"})
	assert.NotNil(t, err)
	assert.Equal(t, "INVALID_GYM_NAME", err.Code)
}

func TestValidateTraining(t *testing.T) {
	valid := func() *services.TrainingInput {
		return &services.TrainingInput{Date: time.Now(), Duration: 45, CaloriesBurned: 300}
	}
	assert.Nil(t, ValidateTraining(valid()))

	in := valid()
	in.Date = time.Time{}
	assert.Equal(t, "INVALID_SESSION_DATE", ValidateTraining(in).Code)

	in = valid()
	in.Date = time.Now().Add(48 * time.Hour)
	assert.Equal(t, "INVALID_SESSION_DATE", ValidateTraining(in).Code)

	in = valid()
	in.Duration = 0
	assert.Equal(t, "INVALID_SESSION_DURATION", ValidateTraining(in).Code)

	in = valid()
	in.Duration = 2000
	assert.Equal(t, "INVALID_SESSION_DURATION", ValidateTraining(in).Code)

	in = valid()
	in.CaloriesBurned = 50000
	assert.Equal(t, "INVALID_SESSION_CALORIES", ValidateTraining(in).Code)
}

func TestValidateGroupName(t *testing.T) {
	assert.Nil(t, ValidateGroupName("Morning Crew"))

	err := ValidateGroupName(" x ")
	assert.NotNil(t, err)
	assert.Equal(t, "INVALID_GROUP_NAME", err.Code)
}
