package model

import (
	"time"

	"github.com/google/uuid"
)

// Record type constants
const (
	RecordTypeGeneral      = "general"
	RecordTypePrescription = "prescription"
	RecordTypeDiagnosis    = "diagnosis"
	RecordTypeVaccination  = "vaccination"
	RecordTypeSurgery      = "surgery"
	RecordTypeTest         = "test"
)

var recordTypes = []string{
	RecordTypeGeneral,
	RecordTypePrescription,
	RecordTypeDiagnosis,
	RecordTypeVaccination,
	RecordTypeSurgery,
	RecordTypeTest,
}

// ValidRecordType reports whether t is a known record type.
func ValidRecordType(t string) bool {
	for _, v := range recordTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Record represents a personal health record. Visible only to its owner;
// created and deleted by the owner, never updated in place.
type Record struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Type        string    `json:"type"`
	Doctor      string    `json:"doctor"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateRecordRequest represents record creation parameters.
type CreateRecordRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Doctor      string `json:"doctor"`
}
