package models

import (
	"time"
)

// AppointmentStatus represents one of the three persisted appointment states.
type AppointmentStatus string

const (
	StatusUpcoming  AppointmentStatus = "Upcoming"
	StatusPast      AppointmentStatus = "Past"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// DisplayStatusMissed is shown for an Upcoming appointment whose time has
// elapsed without cancellation. It is derived at presentation time only; the
// stored status remains Upcoming.
const DisplayStatusMissed = "Missed"

// AppointmentType represents the consultation channel.
type AppointmentType string

const (
	TypeVideo AppointmentType = "Video"
	TypePhone AppointmentType = "Phone"
)

// Appointment represents a scheduled telemedicine consultation.
type Appointment struct {
	ID              string            `json:"id"`
	PatientName     string            `json:"patientName"`
	PatientEmail    string            `json:"patientEmail"`
	Doctor          DoctorRef         `json:"doctor"`
	DateTime        time.Time         `json:"dateTime"`
	Reason          string            `json:"reason"`
	Status          AppointmentStatus `json:"status"`
	AppointmentType AppointmentType   `json:"appointmentType"`
	VideoLink       string            `json:"videoLink,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// DisplayStatus returns the status rendered to the user at instant now.
func (a Appointment) DisplayStatus(now time.Time) string {
	if a.Status == StatusUpcoming && a.DateTime.Before(now) {
		return DisplayStatusMissed
	}
	return string(a.Status)
}

// IsUpcoming reports whether the appointment belongs in the upcoming
// partition: stored status Upcoming and not yet elapsed. Everything else,
// including the Missed case, belongs in the history partition.
func (a Appointment) IsUpcoming(now time.Time) bool {
	return a.Status == StatusUpcoming && !a.DateTime.Before(now)
}
