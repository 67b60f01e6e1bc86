package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"ondoctor-server/internal/alarms"
	"ondoctor-server/internal/utils"
)

// AlarmHandler manages medicine reminder alarms.
type AlarmHandler struct {
	Store *alarms.Store
}

// NewAlarmHandler creates a new AlarmHandler.
func NewAlarmHandler(store *alarms.Store) *AlarmHandler {
	return &AlarmHandler{Store: store}
}

// AlarmRequest represents the request body for creating or updating an alarm.
type AlarmRequest struct {
	MedicineName string `json:"medicineName" binding:"required"`
	Time         string `json:"time" binding:"required"`
	SoundFile    string `json:"soundFile"`
	MobileNumber string `json:"mobileNumber"`
}

func (r AlarmRequest) draft() alarms.Draft {
	return alarms.Draft{
		MedicineName: r.MedicineName,
		Time:         r.Time,
		SoundFile:    r.SoundFile,
		MobileNumber: r.MobileNumber,
	}
}

// CreateAlarm registers a new medicine alarm.
func (h *AlarmHandler) CreateAlarm(c *gin.Context) {
	var req AlarmRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	alarm, err := h.Store.Add(req.draft())
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, "Alarm created successfully", alarm)
}

// ListAlarms returns all alarms ordered by time of day.
func (h *AlarmHandler) ListAlarms(c *gin.Context) {
	utils.Success(c, "Alarms fetched successfully", h.Store.List())
}

// UpdateAlarm replaces the fields of an existing alarm.
func (h *AlarmHandler) UpdateAlarm(c *gin.Context) {
	var req AlarmRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	alarm, err := h.Store.Update(c.Param("id"), req.draft())
	if err != nil {
		if errors.Is(err, alarms.ErrAlarmNotFound) {
			utils.NotFound(c, "Alarm not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, "Alarm updated successfully", alarm)
}

// DeleteAlarm removes an alarm.
func (h *AlarmHandler) DeleteAlarm(c *gin.Context) {
	if err := h.Store.Remove(c.Param("id")); err != nil {
		utils.NotFound(c, "Alarm not found")
		return
	}
	utils.Success(c, "Alarm deleted successfully", nil)
}
