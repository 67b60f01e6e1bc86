package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"ondoctor-server/internal/ai"
	"ondoctor-server/internal/models"
	"ondoctor-server/internal/utils"
)

// AIHandler fronts the generative AI flows: meal planning, e-prescription
// rendering and the assistant chat.
type AIHandler struct {
	Planner    *ai.MealPlanner
	Prescriber *ai.Prescriber
	Assistant  *ai.Assistant
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(planner *ai.MealPlanner, prescriber *ai.Prescriber, assistant *ai.Assistant) *AIHandler {
	return &AIHandler{Planner: planner, Prescriber: prescriber, Assistant: assistant}
}

func respondAIError(c *gin.Context, err error) {
	if errors.Is(err, ai.ErrNotConfigured) {
		utils.ServiceUnavailable(c, "The AI service is not configured. Set a valid GOOGLE_API_KEY and restart the server.")
		return
	}
	utils.Error(c, 502, "AI request failed: "+err.Error())
}

// MealPlanRequest represents the request body for meal plan generation.
type MealPlanRequest struct {
	Age               int    `json:"age" binding:"required,gt=0"`
	Gender            string `json:"gender" binding:"required,oneof=Male Female Other"`
	DietaryPreference string `json:"dietaryPreference" binding:"required,oneof=Vegetarian Non-Vegetarian"`
}

// GenerateMealPlan returns a one-day AI-generated meal plan for the profile.
func (h *AIHandler) GenerateMealPlan(c *gin.Context) {
	var req MealPlanRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	plan, err := h.Planner.Generate(c.Request.Context(), models.MealPlanInput{
		Age:               req.Age,
		Gender:            req.Gender,
		DietaryPreference: req.DietaryPreference,
	})
	if err != nil {
		respondAIError(c, err)
		return
	}
	utils.Success(c, "Meal plan generated successfully", plan)
}

// MedicationRequest is one medication line in an e-prescription request.
type MedicationRequest struct {
	Name      string `json:"name" binding:"required"`
	Dosage    string `json:"dosage" binding:"required"`
	Frequency string `json:"frequency" binding:"required"`
	Duration  string `json:"duration" binding:"required"`
	Notes     string `json:"notes"`
}

// EprescriptionRequest represents the request body for e-prescription generation.
type EprescriptionRequest struct {
	PatientName              string              `json:"patientName" binding:"required"`
	PatientAge               int                 `json:"patientAge" binding:"required,gt=0"`
	PatientGender            string              `json:"patientGender" binding:"required,oneof=Male Female Other"`
	Diagnosis                string              `json:"diagnosis" binding:"required"`
	Medications              []MedicationRequest `json:"medications" binding:"required,min=1,dive"`
	DoctorName               string              `json:"doctorName" binding:"required"`
	DoctorRegistrationNumber string              `json:"doctorRegistrationNumber" binding:"required"`
	ClinicName               string              `json:"clinicName" binding:"required"`
	ClinicAddress            string              `json:"clinicAddress" binding:"required"`
	ClinicPhoneNumber        string              `json:"clinicPhoneNumber"`
}

// GenerateEprescription renders a formatted e-prescription document.
func (h *AIHandler) GenerateEprescription(c *gin.Context) {
	var req EprescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	meds := make([]models.MedicationItem, len(req.Medications))
	for i, m := range req.Medications {
		meds[i] = models.MedicationItem{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
			Duration:  m.Duration,
			Notes:     m.Notes,
		}
	}

	prescription, err := h.Prescriber.Generate(c.Request.Context(), models.PrescriptionInput{
		PatientName:              req.PatientName,
		PatientAge:               req.PatientAge,
		PatientGender:            req.PatientGender,
		Diagnosis:                req.Diagnosis,
		Medications:              meds,
		DoctorName:               req.DoctorName,
		DoctorRegistrationNumber: req.DoctorRegistrationNumber,
		ClinicName:               req.ClinicName,
		ClinicAddress:            req.ClinicAddress,
		ClinicPhoneNumber:        req.ClinicPhoneNumber,
		PrescriptionDate:         time.Now().Format("January 2, 2006"),
	})
	if err != nil {
		respondAIError(c, err)
		return
	}
	utils.Success(c, "E-prescription generated successfully", prescription)
}

// ChatRequest represents the request body for the assistant chat.
type ChatRequest struct {
	UserMessage string `json:"userMessage" binding:"required"`
}

// Chat answers a single assistant chat turn.
func (h *AIHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	reply, err := h.Assistant.Reply(c.Request.Context(), req.UserMessage)
	if err != nil {
		respondAIError(c, err)
		return
	}
	utils.Success(c, "Assistant replied successfully", models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.ChatRoleAssistant,
		Content:   reply,
		Timestamp: time.Now(),
	})
}
