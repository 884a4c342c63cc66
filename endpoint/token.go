package endpoint

import (
	"time"

	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
)

// TokenInfo describes a validated token.
type TokenInfo struct {
	Name        string    `json:"name" example:"Jane Doe"`
	PhoneNumber string    `json:"phonenumber" example:"9999999999"`
	Role        string    `json:"role" example:"patient"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ValidateToken godoc
// @Summary      Validate token
// @Description  Decode the bearer token and return its identity
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]TokenInfo "token"
// @Failure      401 {object} util.ErrorResponse "Invalid or expired token"
// @Router       /token/validate [get]
func (h *Handler) ValidateToken(c *gin.Context) {
	claims, ok := claimsOrRespond(c)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Key: "token", Data: TokenInfo{
		Name:        claims.Name,
		PhoneNumber: claims.PhoneNumber,
		Role:        claims.Role.String(),
		ExpiresAt:   claims.Expiry(),
	}})
}
