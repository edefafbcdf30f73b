package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportTypeLabTest is the default diagnostic report type.
const ReportTypeLabTest = "lab_test"

// Report represents a stored diagnostic report. Read-only after creation.
type Report struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	LabName   string    `json:"labName"`
	Results   string    `json:"results"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateReportRequest represents report upload parameters.
type CreateReportRequest struct {
	Title   string `json:"title" binding:"required"`
	Type    string `json:"type"`
	LabName string `json:"labName"`
	Results string `json:"results"`
	Date    string `json:"date"`
}
