package triage

import (
	"strings"
	"time"

	"github.com/medichq/medic-api/internal/model"
)

// keywordEntry maps a symptom keyword to its candidate conditions, severity
// tier and advice. Entries are ordered so condition aggregation is
// deterministic.
type keywordEntry struct {
	keyword    string
	conditions []string
	severity   string
	advice     string
}

var symptomKeywords = []keywordEntry{
	{
		keyword:    "fever",
		conditions: []string{"Common Cold", "Flu", "Infection"},
		severity:   model.SeverityModerate,
		advice:     "Rest, stay hydrated, monitor temperature",
	},
	{
		keyword:    "headache",
		conditions: []string{"Tension Headache", "Migraine", "Sinusitis"},
		severity:   model.SeverityMild,
		advice:     "Rest in a dark room, stay hydrated",
	},
	{
		keyword:    "cough",
		conditions: []string{"Common Cold", "Bronchitis", "Allergy"},
		severity:   model.SeverityMild,
		advice:     "Stay hydrated, avoid irritants",
	},
	{
		keyword:    "chest_pain",
		conditions: []string{"Heart Condition", "Anxiety", "Muscle Strain"},
		severity:   model.SeverityHigh,
		advice:     "Seek immediate medical attention",
	},
	{
		keyword:    "nausea",
		conditions: []string{"Gastritis", "Food Poisoning", "Viral Infection"},
		severity:   model.SeverityModerate,
		advice:     "Stay hydrated, avoid solid foods temporarily",
	},
}

const (
	defaultCondition = "General Consultation Recommended"
	defaultAdvice    = "Consult with a healthcare professional"
	maxConditions    = 3
)

// Service is the keyword-based symptom responder. Classification is a pure
// function of its input: fixed keyword table, no randomness, no persistence.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Classify matches each symptom text against every keyword by case-folded
// substring containment and aggregates conditions, advice and severity.
func (s *Service) Classify(req *model.TriageRequest) *model.TriageResult {
	var (
		conditions []string
		advice     []string
		severity   = model.SeverityMild
	)
	seenCondition := make(map[string]bool)
	seenAdvice := make(map[string]bool)

	for _, symptom := range req.Symptoms {
		lower := strings.ToLower(symptom)
		for _, entry := range symptomKeywords {
			if !strings.Contains(lower, entry.keyword) {
				continue
			}
			for _, c := range entry.conditions {
				if !seenCondition[c] {
					seenCondition[c] = true
					conditions = append(conditions, c)
				}
			}
			if !seenAdvice[entry.advice] {
				seenAdvice[entry.advice] = true
				advice = append(advice, entry.advice)
			}
			severity = maxSeverity(severity, entry.severity)
		}
	}

	if len(conditions) > maxConditions {
		conditions = conditions[:maxConditions]
	}
	if len(conditions) == 0 {
		conditions = []string{defaultCondition}
	}

	adviceText := defaultAdvice
	if len(advice) > 0 {
		adviceText = strings.Join(advice, ". ")
	}

	return &model.TriageResult{
		PossibleConditions: conditions,
		Severity:           severity,
		Advice:             adviceText,
		Recommendation:     recommendationFor(severity),
		Timestamp:          time.Now().UTC(),
	}
}

func maxSeverity(a, b string) string {
	if a == model.SeverityHigh || b == model.SeverityHigh {
		return model.SeverityHigh
	}
	if a == model.SeverityModerate || b == model.SeverityModerate {
		return model.SeverityModerate
	}
	return model.SeverityMild
}

func recommendationFor(severity string) string {
	switch severity {
	case model.SeverityHigh:
		return "Seek immediate medical attention"
	case model.SeverityModerate:
		return "Schedule an appointment with a doctor soon"
	default:
		return "Monitor symptoms and consult if they persist"
	}
}
