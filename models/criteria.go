// models/criteria.go - Typed badge criteria and reward conditions
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CriteriaKind discriminates badge criteria. The set is closed: decoding an
// unknown kind fails instead of silently evaluating to false.
type CriteriaKind string

const (
	CriteriaTrainingSessions    CriteriaKind = "training_sessions"
	CriteriaChallengesCompleted CriteriaKind = "challenges_completed"
	CriteriaCaloriesBurned      CriteriaKind = "calories_burned"
	CriteriaStreak              CriteriaKind = "streak"
	CriteriaLevel               CriteriaKind = "level"
	CriteriaPoints              CriteriaKind = "points"
)

func (k CriteriaKind) Valid() bool {
	switch k {
	case CriteriaTrainingSessions, CriteriaChallengesCompleted,
		CriteriaCaloriesBurned, CriteriaStreak, CriteriaLevel, CriteriaPoints:
		return true
	}
	return false
}

// BadgeCriteria is the rule attached to a badge. Period narrows
// training_sessions counting to the current week or month.
type BadgeCriteria struct {
	Type   CriteriaKind `json:"type"`
	Target int          `json:"target"`
	Period string       `json:"period,omitempty"` // "", "week", "month"
}

func (c BadgeCriteria) Value() (driver.Value, error) {
	if !c.Type.Valid() {
		return nil, fmt.Errorf("unknown badge criteria kind %q", c.Type)
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (c *BadgeCriteria) Scan(value interface{}) error {
	if err := scanJSON(value, c); err != nil {
		return err
	}
	if !c.Type.Valid() {
		return fmt.Errorf("unknown badge criteria kind %q", c.Type)
	}
	return nil
}

// ConditionKind discriminates reward eligibility conditions.
type ConditionKind string

const (
	ConditionLevel        ConditionKind = "level"
	ConditionBadges       ConditionKind = "badges"
	ConditionPoints       ConditionKind = "points"
	ConditionAchievements ConditionKind = "achievements"
)

func (k ConditionKind) Valid() bool {
	switch k {
	case ConditionLevel, ConditionBadges, ConditionPoints, ConditionAchievements:
		return true
	}
	return false
}

// ConditionRequirements carries the thresholds for a reward condition. Only
// the fields relevant to the kind are set.
type ConditionRequirements struct {
	MinLevel       int    `json:"minLevel,omitempty"`
	MinBadges      int    `json:"minBadges,omitempty"`
	BadgeIDs       []uint `json:"badgeIds,omitempty"`
	MinTotalPoints int    `json:"minTotalPoints,omitempty"`
}

// RewardConditions is the eligibility rule attached to a reward.
type RewardConditions struct {
	Type         ConditionKind         `json:"type"`
	Requirements ConditionRequirements `json:"requirements"`
}

func (c RewardConditions) Value() (driver.Value, error) {
	if !c.Type.Valid() {
		return nil, fmt.Errorf("unknown reward condition kind %q", c.Type)
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (c *RewardConditions) Scan(value interface{}) error {
	if err := scanJSON(value, c); err != nil {
		return err
	}
	if !c.Type.Valid() {
		return fmt.Errorf("unknown reward condition kind %q", c.Type)
	}
	return nil
}

func scanJSON(value, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into %T", value, dest)
	}
}
