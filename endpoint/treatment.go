package endpoint

import (
	"fmt"

	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
)

// TreatmentRequest adds a treatment to the catalog.
type TreatmentRequest struct {
	Name  string  `json:"name" binding:"required,notblank" example:"Scaling"`
	Price float64 `json:"price" binding:"gte=0" example:"1500"`
}

// ListTreatments godoc
// @Summary      List treatments
// @Tags         Treatment
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string][]model.Treatment "treatments"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Router       /treatments [get]
func (h *Handler) ListTreatments(c *gin.Context) {
	treatments, err := h.Catalog.Treatments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "treatments", Data: treatments})
}

// CreateTreatment godoc
// @Summary      Create a treatment
// @Tags         Treatment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TreatmentRequest true "Treatment"
// @Success      200 {object} map[string]model.Treatment "treatment"
// @Failure      400 {object} util.ErrorResponse "Invalid payload"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Failure      409 {object} util.ErrorResponse "Duplicate entry"
// @Router       /treatments [post]
func (h *Handler) CreateTreatment(c *gin.Context) {
	var req TreatmentRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	treatment, err := h.Catalog.CreateTreatment(c.Request.Context(), req.Name, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "treatment", Data: treatment})
}

// DeleteTreatment godoc
// @Summary      Delete a treatment
// @Tags         Treatment
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Treatment id"
// @Success      200 {object} util.MessageResponse "Deleted"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Failure      404 {object} util.ErrorResponse "This treatment does not exist"
// @Router       /treatments/{id} [delete]
func (h *Handler) DeleteTreatment(c *gin.Context) {
	name, err := h.Catalog.DeleteTreatment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallMessage(c, fmt.Sprintf("%s deleted", name))
}
