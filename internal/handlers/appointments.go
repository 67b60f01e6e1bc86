package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"ondoctor-server/internal/directory"
	"ondoctor-server/internal/models"
	"ondoctor-server/internal/scheduling"
	"ondoctor-server/internal/utils"
)

// AppointmentHandler handles slot queries and appointment booking.
type AppointmentHandler struct {
	Store     *scheduling.Store
	Slots     *scheduling.Generator
	Directory *directory.Registry
	Now       func() time.Time
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(store *scheduling.Store, slots *scheduling.Generator, reg *directory.Registry) *AppointmentHandler {
	return &AppointmentHandler{Store: store, Slots: slots, Directory: reg, Now: time.Now}
}

// GetTimeSlots returns the bookable slots for a doctor on a given day.
// Query parameter date is YYYY-MM-DD; it defaults to today.
func (h *AppointmentHandler) GetTimeSlots(c *gin.Context) {
	doctorID := c.Param("id")
	if _, err := h.Directory.DoctorByID(doctorID); err != nil {
		utils.NotFound(c, "Doctor not found")
		return
	}

	date := h.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, date.Location())
		if err != nil {
			utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	slots := h.Slots.AvailableTimeSlots(date, doctorID)
	utils.Success(c, "Time slots fetched successfully", slots)
}

// CreateAppointmentRequest represents the request body for booking.
type CreateAppointmentRequest struct {
	DoctorID        string    `json:"doctorId" binding:"required"`
	PatientName     string    `json:"patientName" binding:"required"`
	PatientEmail    string    `json:"patientEmail" binding:"required,email"`
	Reason          string    `json:"reason" binding:"required"`
	DateTime        time.Time `json:"dateTime" binding:"required"`
	AppointmentType string    `json:"appointmentType" binding:"required,oneof=Video Phone"`
}

// CreateAppointment books a consultation with a doctor.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	draft := scheduling.CreateAppointment{
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		Reason:          req.Reason,
		DateTime:        req.DateTime,
		AppointmentType: models.AppointmentType(req.AppointmentType),
	}

	apt, err := h.Store.Create(draft, req.DoctorID)
	if err != nil {
		if errors.Is(err, directory.ErrDoctorNotFound) {
			utils.NotFound(c, "Doctor not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, "Appointment created successfully", apt)
}

// appointmentView adds the presentation-time display status to a record. For
// an Upcoming appointment whose time has elapsed the display status reads
// Missed while the stored status stays Upcoming.
type appointmentView struct {
	models.Appointment
	DisplayStatus string `json:"displayStatus"`
}

func (h *AppointmentHandler) views(apts []models.Appointment) []appointmentView {
	now := h.Now()
	out := make([]appointmentView, len(apts))
	for i, a := range apts {
		out[i] = appointmentView{Appointment: a, DisplayStatus: a.DisplayStatus(now)}
	}
	return out
}

// ListAppointments returns all appointments partitioned into the upcoming
// and history views, each most recent first.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	upcoming, history := h.Store.Partition()
	utils.Success(c, "Appointments fetched successfully", gin.H{
		"upcoming": h.views(upcoming),
		"history":  h.views(history),
	})
}

// GetAppointmentByID returns a single appointment.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	apt, err := h.Store.Get(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment fetched successfully", appointmentView{
		Appointment:   apt,
		DisplayStatus: apt.DisplayStatus(h.Now()),
	})
}

// CancelAppointment cancels an upcoming appointment. Repeating the call on a
// cancelled appointment succeeds without changes; cancelling an appointment
// that already took place is rejected.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	apt, err := h.Store.Cancel(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrAppointmentNotFound):
			utils.NotFound(c, "Appointment not found")
		case errors.Is(err, scheduling.ErrAppointmentElapsed):
			utils.Conflict(c, "Appointment already took place and cannot be cancelled")
		default:
			utils.InternalServerError(c, "Failed to cancel appointment: "+err.Error())
		}
		return
	}
	utils.Success(c, "Appointment cancelled successfully", apt)
}
