package model

import "time"

// RoundID uniquely identifies one play-through of a mini-game
type RoundID string

// RoundStatus represents the current phase of a game round
type RoundStatus string

const (
	RoundIdle     RoundStatus = "idle"     // Waiting for the player to start
	RoundPlaying  RoundStatus = "playing"  // Countdown running, targets active
	RoundFinished RoundStatus = "finished" // Countdown hit zero or round ended
)

// Target is the currently visible thing to hit: a position within the play
// area (percentages of width/height) plus the label shown on it.
type Target struct {
	X     float64
	Y     float64
	Label string
}

// RoundResult is the payload submitted to the assessment endpoint when a
// round finishes. Field names mirror the backend contract.
type RoundResult struct {
	TestType           string  `json:"test_type"`
	TotalTimeSec       int     `json:"total_time_sec"`
	AccuracyPercent    float64 `json:"accuracy_percent"`
	PhonologicalScore  float64 `json:"phonological_score"`
	NamingSpeedScore   float64 `json:"naming_speed_score"`
	WorkingMemoryScore float64 `json:"working_memory_score"`
}

// RiskLevel is the backend's coarse classification of an assessment score
type RiskLevel string

const (
	RiskHigh     RiskLevel = "High"
	RiskModerate RiskLevel = "Moderate"
	RiskLow      RiskLevel = "Low"
)

// RiskLevelFor mirrors the backend's accuracy thresholds so screens can
// colour a score before the server echoes the classification back.
func RiskLevelFor(accuracyPercent float64) RiskLevel {
	switch {
	case accuracyPercent < 50:
		return RiskHigh
	case accuracyPercent < 80:
		return RiskModerate
	default:
		return RiskLow
	}
}

// ScoreRecord is one historical assessment entry returned by the backend
type ScoreRecord struct {
	TestType        string    `json:"test_type"`
	AccuracyPercent float64   `json:"accuracy_percent"`
	RiskLevel       RiskLevel `json:"risk_level"`
	CreatedAt       time.Time `json:"created_at"`
}
