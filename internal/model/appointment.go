package model

import (
	"time"

	"github.com/google/uuid"
)

// Appointment type constants
const (
	AppointmentTypeConsultation = "consultation"
	AppointmentTypeLabTest      = "lab_test"
	AppointmentTypeFollowUp     = "follow_up"
	AppointmentTypeSurgery      = "surgery"
	AppointmentTypeCheckup      = "checkup"
)

// Appointment status constants
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

var appointmentTypes = []string{
	AppointmentTypeConsultation,
	AppointmentTypeLabTest,
	AppointmentTypeFollowUp,
	AppointmentTypeSurgery,
	AppointmentTypeCheckup,
}

// ValidAppointmentType reports whether t is a known appointment type.
func ValidAppointmentType(t string) bool {
	for _, v := range appointmentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Appointment represents a booking with a doctor. Status is mutated by the
// owner or an admin; appointments are never deleted.
type Appointment struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	DoctorName string    `json:"doctorName"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateAppointmentRequest represents booking parameters.
type CreateAppointmentRequest struct {
	DoctorName string `json:"doctorName" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Type       string `json:"type"`
	Notes      string `json:"notes"`
}

// UpdateStatusRequest carries a status transition for any entity kind.
// An empty status leaves the stored value unchanged.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
