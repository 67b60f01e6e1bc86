package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ondoctor-server/internal/models"
	"ondoctor-server/internal/utils"
)

// DeviceHandler serves the simulated connected health devices. The list is
// fixed demo data; there is no real device integration.
type DeviceHandler struct {
	devices []models.HealthDevice
}

// NewDeviceHandler creates a DeviceHandler with the demo device list.
func NewDeviceHandler() *DeviceHandler {
	now := time.Now()
	return &DeviceHandler{
		devices: []models.HealthDevice{
			{
				ID:       uuid.New().String(),
				Name:     "Omron BP Monitor",
				Type:     models.DeviceBloodPressure,
				Status:   models.DeviceConnected,
				LastSync: now.Add(-15 * time.Minute),
				Readings: []models.DeviceReading{
					{Date: now.Add(-15 * time.Minute), Value: "118/76", Unit: "mmHg"},
				},
			},
			{
				ID:       uuid.New().String(),
				Name:     "Beurer Pulse Oximeter",
				Type:     models.DevicePulseOximeter,
				Status:   models.DeviceConnected,
				LastSync: now.Add(-2 * time.Hour),
				Readings: []models.DeviceReading{
					{Date: now.Add(-2 * time.Hour), Value: "98", Unit: "% SpO2"},
				},
			},
			{
				ID:       uuid.New().String(),
				Name:     "Accu-Chek Glucose Meter",
				Type:     models.DeviceGlucoseMeter,
				Status:   models.DeviceSyncing,
				LastSync: now.Add(-26 * time.Hour),
			},
			{
				ID:       uuid.New().String(),
				Name:     "Withings Smart Scale",
				Type:     models.DeviceSmartScale,
				Status:   models.DeviceDisconnected,
				LastSync: now.Add(-72 * time.Hour),
			},
			{
				ID:       uuid.New().String(),
				Name:     "Fitbit Charge",
				Type:     models.DeviceFitnessTracker,
				Status:   models.DeviceError,
				LastSync: now.Add(-8 * 24 * time.Hour),
			},
		},
	}
}

// ListDevices returns the simulated device list.
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	utils.Success(c, "Devices fetched successfully", h.devices)
}
