package endpoint

import (
	"github.com/ariebrainware/dentist-api/middleware"
	"github.com/ariebrainware/dentist-api/model"
	"github.com/ariebrainware/dentist-api/service"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
)

// PatientDetailsRequest is the personal part of a registration.
type PatientDetailsRequest struct {
	Name        string `json:"name" binding:"required,notblank" example:"Jane Doe"`
	DateOfBirth string `json:"date_of_birth" binding:"required,dob" example:"1990-01-01"`
	Address     string `json:"address" example:"12 MG Road"`
	Gender      string `json:"gender" binding:"required,gender" example:"F"`
}

// RegisterPatientRequest registers a patient on behalf of the front desk.
type RegisterPatientRequest struct {
	PhoneNumber util.PhoneNumber      `json:"phonenumber" binding:"required,phonenumber" swaggertype:"string" example:"9999999999"`
	Details     PatientDetailsRequest `json:"details"`
}

// RegisterPatient godoc
// @Summary      Register a patient
// @Description  Create a patient account and its personal details in one step
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RegisterPatientRequest true "Patient details"
// @Success      200 {object} util.MessageResponse "Details have been registered"
// @Failure      400 {object} util.ErrorResponse "Invalid payload"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Failure      409 {object} util.ErrorResponse "Account exists"
// @Router       /details [post]
func (h *Handler) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}

	user, err := h.Patients.Register(c.Request.Context(), service.RegisterPatientInput{
		PhoneNumber: req.PhoneNumber.String(),
		Name:        req.Details.Name,
		DateOfBirth: req.Details.DateOfBirth,
		Address:     req.Details.Address,
		Gender:      model.Gender(req.Details.Gender),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	staffPhone := ""
	if claims, ok := middleware.GetClaims(c); ok {
		staffPhone = claims.PhoneNumber
	}
	util.LogPatientRegistered(user.ID, user.PhoneNumber, staffPhone, c.ClientIP())
	util.CallMessage(c, "Details have been registered")
}

// ListPatients godoc
// @Summary      List all patients
// @Description  Every registered patient ordered by name
// @Tags         Patient
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string][]model.PatientResponse "patients"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Router       /patients [get]
func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.Patients.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "patients", Data: patients})
}

// GetPatient godoc
// @Summary      Patients by phone number
// @Description  Every patient sharing the phone number
// @Tags         Patient
// @Produce      json
// @Security     BearerAuth
// @Param        phonenumber path string true "Phone number"
// @Success      200 {object} map[string][]model.PatientResponse "patient"
// @Failure      400 {object} util.ErrorResponse "Invalid phone number"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Failure      404 {object} util.ErrorResponse "No patient found"
// @Router       /patients/{phonenumber} [get]
func (h *Handler) GetPatient(c *gin.Context) {
	patients, err := h.Patients.ByPhoneNumber(c.Request.Context(), c.Param("phonenumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "patient", Data: patients})
}
