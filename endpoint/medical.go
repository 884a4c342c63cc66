package endpoint

import (
	"github.com/ariebrainware/dentist-api/service"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
)

// IdentityRequest names a patient by the natural key.
type IdentityRequest struct {
	Name        string           `json:"name" binding:"required,notblank" example:"Jane Doe"`
	PhoneNumber util.PhoneNumber `json:"phonenumber" binding:"required,phonenumber" swaggertype:"string" example:"9999999999"`
}

// MedicalFieldsRequest replaces every medical field.
type MedicalFieldsRequest struct {
	Allergies []string `json:"allergies" example:"Penicillin"`
	Illnesses []string `json:"illnesses" example:"Diabetes"`
	Smoking   bool     `json:"smoking"`
	Tobacco   bool     `json:"tobacco"`
	Drinking  bool     `json:"drinking"`
}

// MedicalDetailsRequest is submitted by the dentist after a consultation.
type MedicalDetailsRequest struct {
	Identity       IdentityRequest      `json:"identity"`
	MedicalDetails MedicalFieldsRequest `json:"medical_details"`
}

// MyMedicalDetails godoc
// @Summary      Own medical details
// @Description  Medical details of the caller identified by the token
// @Tags         Medical
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]model.MedicalDetailsResponse "medical_details"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      404 {object} util.ErrorResponse "User not found"
// @Router       /medical_details [get]
func (h *Handler) MyMedicalDetails(c *gin.Context) {
	claims, ok := claimsOrRespond(c)
	if !ok {
		return
	}
	details, err := h.Medical.Get(c.Request.Context(), claims.PhoneNumber, claims.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "medical_details", Data: details})
}

// GetMedicalDetails godoc
// @Summary      Patient medical details
// @Description  Dentist lookup by phone number and snake_case name
// @Tags         Medical
// @Produce      json
// @Security     BearerAuth
// @Param        phonenumber path string true "Phone number"
// @Param        name path string true "Name in snake_case, e.g. jane_doe"
// @Success      200 {object} map[string]model.MedicalDetailsResponse "medical_details"
// @Failure      400 {object} util.ErrorResponse "Invalid phone number"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Failure      404 {object} util.ErrorResponse "User not found"
// @Router       /medical_details/{phonenumber}/{name} [get]
func (h *Handler) GetMedicalDetails(c *gin.Context) {
	phone := c.Param("phonenumber")
	if v := util.ValidatePhoneNumber(phone); !v.Valid {
		util.CallUserError(c, util.APIErrorParams{Msg: v.Error})
		return
	}
	details, err := h.Medical.Get(c.Request.Context(), phone, util.NameFromPath(c.Param("name")))
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "medical_details", Data: details})
}

// SaveMedicalDetails godoc
// @Summary      Save medical details
// @Description  Overwrite allergies, illnesses and habits of a patient
// @Tags         Medical
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body MedicalDetailsRequest true "Medical details"
// @Success      201 {object} util.MessageResponse "Medical details have been saved"
// @Failure      400 {object} util.ErrorResponse "Invalid payload"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Failure      404 {object} util.ErrorResponse "User not found"
// @Router       /medical_details [post]
func (h *Handler) SaveMedicalDetails(c *gin.Context) {
	var req MedicalDetailsRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}

	_, err := h.Medical.Upsert(c.Request.Context(), service.MedicalDetailsInput{
		Name:        req.Identity.Name,
		PhoneNumber: req.Identity.PhoneNumber.String(),
		Allergies:   req.MedicalDetails.Allergies,
		Illnesses:   req.MedicalDetails.Illnesses,
		Smoking:     req.MedicalDetails.Smoking,
		Tobacco:     req.MedicalDetails.Tobacco,
		Drinking:    req.MedicalDetails.Drinking,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallCreated(c, util.APISuccessParams{Key: "message", Data: "Medical details have been saved"})
}
