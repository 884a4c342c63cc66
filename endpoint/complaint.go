package endpoint

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ariebrainware/dentist-api/service"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	streamKeepAlive = 25 * time.Second
	complaintEvent  = "complaint"
	keepAliveEvent  = "ping"
)

// ComplaintRequest describes the visit.
type ComplaintRequest struct {
	Name           string `json:"name" binding:"required,notblank" example:"Jane Doe"`
	ChiefComplaint string `json:"chief_complaint" binding:"required,notblank" example:"Toothache"`
}

// RegisterComplaintRequest registers a complaint for an existing patient.
type RegisterComplaintRequest struct {
	PhoneNumber util.PhoneNumber `json:"phonenumber" binding:"required,phonenumber" swaggertype:"string" example:"9999999999"`
	Complaint   ComplaintRequest `json:"complaint"`
}

// ListComplaints godoc
// @Summary      Today's complaints
// @Description  Complaints registered on the current clinic date in arrival order
// @Tags         Complaint
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string][]model.QueueEntry "complaints"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Router       /complaints [get]
func (h *Handler) ListComplaints(c *gin.Context) {
	complaints, err := h.Complaints.Today(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "complaints", Data: complaints})
}

// RegisterComplaint godoc
// @Summary      Register a complaint
// @Description  Add a patient to today's queue
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RegisterComplaintRequest true "Complaint"
// @Success      200 {object} util.MessageResponse "complaint registered"
// @Failure      400 {object} util.ErrorResponse "Invalid payload"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Failure      404 {object} util.ErrorResponse "User not found"
// @Router       /complaints [post]
func (h *Handler) RegisterComplaint(c *gin.Context) {
	var req RegisterComplaintRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}

	entry, err := h.Complaints.Register(c.Request.Context(), service.RegisterComplaintInput{
		PhoneNumber:    req.PhoneNumber.String(),
		Name:           req.Complaint.Name,
		ChiefComplaint: req.Complaint.ChiefComplaint,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "complaint registered", "complaint": entry})
}

// ExportComplaints godoc
// @Summary      Export today's complaints
// @Description  Today's queue as an XLSX workbook
// @Tags         Complaint
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200 {file} file "Workbook"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Router       /complaints/export [get]
func (h *Handler) ExportComplaints(c *gin.Context) {
	complaints, err := h.Complaints.Today(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	date := h.Clock.Today()
	data, err := service.ExportComplaints(date, complaints)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Err: err})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="complaints-%s.xlsx"`, date))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// StreamComplaints godoc
// @Summary      Live complaint queue
// @Description  Server-Sent Events stream emitting a "complaint" event per new registration
// @Tags         Complaint
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200 {object} model.QueueEntry "complaint event"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Forbidden"
// @Router       /complaints/stream [get]
func (h *Handler) StreamComplaints(c *gin.Context) {
	entries, cancel := h.Queue.Subscribe()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(streamKeepAlive)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-entries:
			if !ok {
				return
			}
			c.SSEvent(complaintEvent, entry)
			c.Writer.Flush()
		case t := <-ticker.C:
			c.SSEvent(keepAliveEvent, t.UTC().Format(time.RFC3339))
			c.Writer.Flush()
		}
	}
}
