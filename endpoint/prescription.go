package endpoint

import (
	"fmt"

	"github.com/ariebrainware/dentist-api/service"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
)

// PrescriptionRequest creates or replaces a prescription.
type PrescriptionRequest struct {
	Name string `json:"name" binding:"required,notblank" example:"Amoxicillin 500mg"`
	Type string `json:"type" binding:"required,notblank" example:"medication"`
}

func (r PrescriptionRequest) input() service.PrescriptionInput {
	return service.PrescriptionInput{Name: r.Name, Type: r.Type}
}

// ListPrescriptions godoc
// @Summary      List prescriptions
// @Description  Prescriptions grouped by type
// @Tags         Prescription
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]map[string][]model.PrescriptionItem "prescriptions"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Router       /prescriptions [get]
func (h *Handler) ListPrescriptions(c *gin.Context) {
	grouped, err := h.Catalog.Prescriptions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "prescriptions", Data: grouped})
}

// CreatePrescription godoc
// @Summary      Create a prescription
// @Tags         Prescription
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PrescriptionRequest true "Prescription"
// @Success      200 {object} map[string]model.Prescription "prescription"
// @Failure      400 {object} util.ErrorResponse "Invalid payload"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Failure      409 {object} util.ErrorResponse "Duplicate entry"
// @Router       /prescriptions [post]
func (h *Handler) CreatePrescription(c *gin.Context) {
	var req PrescriptionRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	p, err := h.Catalog.CreatePrescription(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "prescription", Data: p})
}

// UpdatePrescription godoc
// @Summary      Update a prescription
// @Tags         Prescription
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Prescription id"
// @Param        request body PrescriptionRequest true "Prescription"
// @Success      200 {object} map[string]model.Prescription "prescription"
// @Failure      400 {object} util.ErrorResponse "Invalid payload"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Failure      404 {object} util.ErrorResponse "Invalid prescription, it does not exist"
// @Failure      409 {object} util.ErrorResponse "Duplicate entry"
// @Router       /prescriptions/{id} [patch]
func (h *Handler) UpdatePrescription(c *gin.Context) {
	var req PrescriptionRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	p, err := h.Catalog.UpdatePrescription(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "prescription", Data: p})
}

// DeletePrescription godoc
// @Summary      Delete a prescription
// @Tags         Prescription
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Prescription id"
// @Success      200 {object} util.MessageResponse "Deleted"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Failure      404 {object} util.ErrorResponse "Invalid prescription, it does not exist"
// @Router       /prescriptions/{id} [delete]
func (h *Handler) DeletePrescription(c *gin.Context) {
	name, err := h.Catalog.DeletePrescription(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallMessage(c, fmt.Sprintf("%s deleted", name))
}
