package models

// MedicineAlarm is a daily medicine reminder. Time is stored in "HH:MM"
// 24-hour format; delivery is simulated (log output), never a real SMS.
type MedicineAlarm struct {
	ID           string `json:"id"`
	MedicineName string `json:"medicineName"`
	Time         string `json:"time"`
	SoundFile    string `json:"soundFile,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
}
