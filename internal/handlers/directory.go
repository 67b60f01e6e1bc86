package handlers

import (
	"github.com/gin-gonic/gin"

	"ondoctor-server/internal/directory"
	"ondoctor-server/internal/utils"
)

// DirectoryHandler serves the read-only reference catalog.
type DirectoryHandler struct {
	Registry *directory.Registry
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(reg *directory.Registry) *DirectoryHandler {
	return &DirectoryHandler{Registry: reg}
}

// GetDoctors lists the doctors available for consultations.
func (h *DirectoryHandler) GetDoctors(c *gin.Context) {
	utils.Success(c, "Doctors fetched successfully", h.Registry.Doctors())
}

// GetDoctorByID returns one doctor.
func (h *DirectoryHandler) GetDoctorByID(c *gin.Context) {
	doctor, err := h.Registry.DoctorByID(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Doctor not found")
		return
	}
	utils.Success(c, "Doctor fetched successfully", doctor)
}

// GetDepartments lists the surgical departments.
func (h *DirectoryHandler) GetDepartments(c *gin.Context) {
	utils.Success(c, "Departments fetched successfully", h.Registry.Departments())
}

// GetSurgeries lists the popular surgeries.
func (h *DirectoryHandler) GetSurgeries(c *gin.Context) {
	utils.Success(c, "Surgeries fetched successfully", h.Registry.Surgeries())
}

// GetHealthConcerns lists the common health concerns.
func (h *DirectoryHandler) GetHealthConcerns(c *gin.Context) {
	utils.Success(c, "Health concerns fetched successfully", h.Registry.HealthConcerns())
}
