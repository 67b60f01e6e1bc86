package ai

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"ondoctor-server/internal/models"
)

// ValidatePrescriptionInput checks the submitted prescription details.
func ValidatePrescriptionInput(in models.PrescriptionInput) error {
	if err := validation.ValidateStruct(&in,
		validation.Field(&in.PatientName, validation.Required),
		validation.Field(&in.PatientAge, validation.Required, validation.Min(1)),
		validation.Field(&in.PatientGender,
			validation.Required,
			validation.In(models.GenderMale, models.GenderFemale, models.GenderOther)),
		validation.Field(&in.Diagnosis, validation.Required),
		validation.Field(&in.Medications, validation.Required, validation.Length(1, 0)),
		validation.Field(&in.DoctorName, validation.Required),
		validation.Field(&in.DoctorRegistrationNumber, validation.Required),
		validation.Field(&in.ClinicName, validation.Required),
		validation.Field(&in.ClinicAddress, validation.Required),
		validation.Field(&in.PrescriptionDate, validation.Required),
	); err != nil {
		return err
	}
	for i, m := range in.Medications {
		if err := validation.ValidateStruct(&m,
			validation.Field(&m.Name, validation.Required),
			validation.Field(&m.Dosage, validation.Required),
			validation.Field(&m.Frequency, validation.Required),
			validation.Field(&m.Duration, validation.Required),
		); err != nil {
			return fmt.Errorf("medication %d: %w", i+1, err)
		}
	}
	return nil
}

// Prescriber renders formal e-prescription documents through the model.
type Prescriber struct {
	client *Client
}

// NewPrescriber wires the prescriber.
func NewPrescriber(client *Client) *Prescriber {
	return &Prescriber{client: client}
}

// Generate produces the formatted plain-text e-prescription for the given
// details: clinic header, patient block, Rx list, doctor block, patient
// instructions and disclaimer.
func (p *Prescriber) Generate(ctx context.Context, in models.PrescriptionInput) (models.Prescription, error) {
	if err := ValidatePrescriptionInput(in); err != nil {
		return models.Prescription{}, err
	}

	text, err := p.client.GenerateText(ctx, buildPrescriptionPrompt(in))
	if err != nil {
		return models.Prescription{}, err
	}
	return models.Prescription{PrescriptionText: text}, nil
}

func buildPrescriptionPrompt(in models.PrescriptionInput) string {
	var sb strings.Builder
	sb.WriteString("You are an AI assistant tasked with generating a formal e-prescription.\n")
	sb.WriteString("Please format the prescription clearly and professionally based on the provided information.\n\n")

	sb.WriteString("Clinic Information:\n")
	fmt.Fprintf(&sb, "Clinic Name: %s\n", in.ClinicName)
	fmt.Fprintf(&sb, "Address: %s\n", in.ClinicAddress)
	if in.ClinicPhoneNumber != "" {
		fmt.Fprintf(&sb, "Phone: %s\n", in.ClinicPhoneNumber)
	}

	sb.WriteString("\n--------------------------------------------------\n")
	sb.WriteString("E-PRESCRIPTION\n")
	sb.WriteString("--------------------------------------------------\n")
	fmt.Fprintf(&sb, "Date: %s\n\n", in.PrescriptionDate)

	sb.WriteString("Patient Details:\n")
	fmt.Fprintf(&sb, "Name: %s\n", in.PatientName)
	fmt.Fprintf(&sb, "Age: %d years\n", in.PatientAge)
	fmt.Fprintf(&sb, "Gender: %s\n\n", in.PatientGender)

	sb.WriteString("Diagnosis:\n")
	fmt.Fprintf(&sb, "%s\n\n", in.Diagnosis)

	sb.WriteString("--------------------------------------------------\n")
	sb.WriteString("Rx (Medications):\n")
	sb.WriteString("--------------------------------------------------\n\n")
	for i, m := range in.Medications {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, m.Name)
		fmt.Fprintf(&sb, "   Dosage: %s\n", m.Dosage)
		fmt.Fprintf(&sb, "   Frequency: %s\n", m.Frequency)
		fmt.Fprintf(&sb, "   Duration: %s\n", m.Duration)
		if m.Notes != "" {
			fmt.Fprintf(&sb, "   Notes: %s\n", m.Notes)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("--------------------------------------------------\n\n")

	sb.WriteString("Prescribing Doctor:\n")
	fmt.Fprintf(&sb, "Dr. %s\n", in.DoctorName)
	fmt.Fprintf(&sb, "Registration No: %s\n\n", in.DoctorRegistrationNumber)
	sb.WriteString("(Digital Signature Placeholder / Verified via OnDoctor Platform)\n")
	sb.WriteString("--------------------------------------------------\n\n")

	sb.WriteString("Instructions to Patient:\n")
	sb.WriteString("- Follow the dosage and frequency instructions carefully.\n")
	sb.WriteString("- Complete the full course of medication as prescribed, even if you start feeling better.\n")
	sb.WriteString("- If you experience any adverse effects, contact your doctor or clinic immediately.\n")
	sb.WriteString("- Keep this prescription and all medications out of reach of children.\n")
	sb.WriteString("- This prescription is valid as per local regulations.\n\n")
	sb.WriteString("Disclaimer: This e-prescription is generated based on information provided by the healthcare professional.\n")

	return sb.String()
}
