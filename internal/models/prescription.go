package models

// MedicationItem is one prescribed medication on an e-prescription.
type MedicationItem struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
	Notes     string `json:"notes,omitempty"`
}

// PrescriptionInput carries everything needed to render an e-prescription.
type PrescriptionInput struct {
	PatientName              string           `json:"patientName"`
	PatientAge               int              `json:"patientAge"`
	PatientGender            string           `json:"patientGender"`
	Diagnosis                string           `json:"diagnosis"`
	Medications              []MedicationItem `json:"medications"`
	DoctorName               string           `json:"doctorName"`
	DoctorRegistrationNumber string           `json:"doctorRegistrationNumber"`
	ClinicName               string           `json:"clinicName"`
	ClinicAddress            string           `json:"clinicAddress"`
	ClinicPhoneNumber        string           `json:"clinicPhoneNumber,omitempty"`
	PrescriptionDate         string           `json:"prescriptionDate"`
}

// Prescription is the generated e-prescription document.
type Prescription struct {
	PrescriptionText string `json:"prescriptionText"`
}
