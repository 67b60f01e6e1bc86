package models

import "time"

// HealthDeviceType enumerates the supported home monitoring devices.
type HealthDeviceType string

const (
	DeviceBloodPressure  HealthDeviceType = "Blood Pressure Monitor"
	DevicePulseOximeter  HealthDeviceType = "Pulse Oximeter"
	DeviceGlucoseMeter   HealthDeviceType = "Glucose Meter"
	DeviceSmartScale     HealthDeviceType = "Smart Scale"
	DeviceFitnessTracker HealthDeviceType = "Fitness Tracker"
)

// HealthDeviceStatus is the simulated connection state of a device.
type HealthDeviceStatus string

const (
	DeviceConnected    HealthDeviceStatus = "Connected"
	DeviceDisconnected HealthDeviceStatus = "Disconnected"
	DeviceSyncing      HealthDeviceStatus = "Syncing..."
	DeviceError        HealthDeviceStatus = "Error"
)

// DeviceReading is a single measurement reported by a device.
type DeviceReading struct {
	Date  time.Time `json:"date"`
	Value string    `json:"value"`
	Unit  string    `json:"unit"`
}

// HealthDevice is a simulated connected health device. There is no real IoT
// integration; the list and readings are static demo data.
type HealthDevice struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Type     HealthDeviceType   `json:"type"`
	Status   HealthDeviceStatus `json:"status"`
	LastSync time.Time          `json:"lastSync"`
	Readings []DeviceReading    `json:"readings,omitempty"`
}
