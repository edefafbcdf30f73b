package model

import "time"

// Triage severity tiers, lowest to highest.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
)

// TriageRequest represents symptom-checker input.
type TriageRequest struct {
	Symptoms []string `json:"symptoms" binding:"required"`
	Age      int      `json:"age"`
	Gender   string   `json:"gender"`
}

// TriageResult is the structured recommendation produced by the symptom
// checker. Deterministic for a given input.
type TriageResult struct {
	PossibleConditions []string  `json:"possibleConditions"`
	Severity           string    `json:"severity"`
	Advice             string    `json:"advice"`
	Recommendation     string    `json:"recommendation"`
	Timestamp          time.Time `json:"timestamp"`
}
