package endpoint

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
)

// Healthz godoc
// @Summary      Health check
// @Description  Pings the database and, when configured, Redis
// @Tags         Health
// @Produce      json
// @Success      200 {object} map[string]string "ok"
// @Failure      503 {object} util.ErrorResponse "Dependency down"
// @Router       /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		util.CallServiceUnavailable(c, util.APIErrorParams{Msg: "database unavailable", Err: fmt.Errorf("database ping: %w", err)})
		return
	}
	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			util.CallServiceUnavailable(c, util.APIErrorParams{Msg: "redis unavailable", Err: fmt.Errorf("redis ping: %w", err)})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
