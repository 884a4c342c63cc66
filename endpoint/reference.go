package endpoint

import (
	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
)

// ListAllergies godoc
// @Summary      Known allergies
// @Tags         Reference
// @Produce      json
// @Success      200 {object} map[string][]string "allergies"
// @Router       /allergies [get]
func (h *Handler) ListAllergies(c *gin.Context) {
	names, err := h.Reference.Allergies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "allergies", Data: names})
}

// ListMedicalConditions godoc
// @Summary      Known medical conditions
// @Tags         Reference
// @Produce      json
// @Success      200 {object} map[string][]string "medical_conditions"
// @Router       /medical_conditions [get]
func (h *Handler) ListMedicalConditions(c *gin.Context) {
	names, err := h.Reference.MedicalConditions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "medical_conditions", Data: names})
}
