package endpoint

import (
	"github.com/ariebrainware/dentist-api/service"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
)

// AddFollowUpRequest schedules a revisit for a complaint.
type AddFollowUpRequest struct {
	ComplaintID uint   `json:"complaint_id" binding:"required" example:"12"`
	Title       string `json:"title" binding:"required,notblank" example:"Root canal, second sitting"`
	Date        string `json:"date" binding:"required,date" example:"2025-03-17"`
	Time        string `json:"time" binding:"required,clock" example:"11:30"`
}

// ListFollowUps godoc
// @Summary      Follow-ups for a date
// @Description  Follow-ups scheduled on date, today when omitted, ordered by time
// @Tags         FollowUp
// @Produce      json
// @Security     BearerAuth
// @Param        date query string false "Date in YYYY-MM-DD"
// @Success      200 {object} map[string][]model.FollowUpEntry "followups"
// @Failure      400 {object} util.ErrorResponse "Invalid date"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Router       /followups [get]
func (h *Handler) ListFollowUps(c *gin.Context) {
	followups, err := h.FollowUps.ForDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "followups", Data: followups})
}

// AddFollowUp godoc
// @Summary      Schedule a follow-up
// @Tags         FollowUp
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddFollowUpRequest true "Follow-up"
// @Success      201 {object} map[string]model.FollowUp "followup"
// @Failure      400 {object} util.ErrorResponse "Invalid payload"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Failure      404 {object} util.ErrorResponse "Complaint not found"
// @Router       /followups [post]
func (h *Handler) AddFollowUp(c *gin.Context) {
	var req AddFollowUpRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}

	followup, err := h.FollowUps.Add(c.Request.Context(), service.AddFollowUpInput{
		ComplaintID: req.ComplaintID,
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallCreated(c, util.APISuccessParams{Key: "followup", Data: followup})
}
