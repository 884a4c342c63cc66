package endpoint

import (
	"github.com/ariebrainware/dentist-api/service"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
)

// CredentialsRequest is the body of signup and login.
type CredentialsRequest struct {
	Name        string           `json:"name" binding:"required,notblank" example:"Jane Doe"`
	PhoneNumber util.PhoneNumber `json:"phonenumber" binding:"required,phonenumber" swaggertype:"string" example:"9999999999"`
	Password    string           `json:"password" binding:"required" example:"s3cret-pass"`
}

func (r CredentialsRequest) credentials() service.Credentials {
	return service.Credentials{Name: r.Name, PhoneNumber: r.PhoneNumber.String(), Password: r.Password}
}

// PhoneResetRequest moves the caller's account to a new phone number.
type PhoneResetRequest struct {
	Name           string           `json:"name" binding:"required,notblank" example:"Jane Doe"`
	OldPhoneNumber util.PhoneNumber `json:"old_phonenumber" binding:"required,phonenumber" swaggertype:"string" example:"9999999999"`
	NewPhoneNumber util.PhoneNumber `json:"new_phonenumber" binding:"required,phonenumber" swaggertype:"string" example:"8888888888"`
}

// TokenResponse is returned whenever a token is issued.
type TokenResponse struct {
	Token       string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Role        string `json:"role" example:"patient"`
	Name        string `json:"name" example:"Jane Doe"`
	PhoneNumber string `json:"phonenumber" example:"9999999999"`
}

func tokenResponse(sess *service.Session) TokenResponse {
	return TokenResponse{
		Token:       sess.Token,
		Role:        sess.User.Role.String(),
		Name:        sess.User.Name,
		PhoneNumber: sess.User.PhoneNumber,
	}
}

// Signup godoc
// @Summary      Sign up
// @Description  Set a password on a front-desk registered account or create a new patient
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body CredentialsRequest true "Credentials"
// @Success      200 {object} TokenResponse "Signed up"
// @Failure      400 {object} util.ErrorResponse "Invalid payload"
// @Failure      409 {object} util.ErrorResponse "Account already exists"
// @Router       /auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}

	sess, claimed, err := h.Accounts.Signup(c.Request.Context(), req.credentials())
	if err != nil {
		respondError(c, err)
		return
	}
	util.LogSignup(sess.User.ID, sess.User.PhoneNumber, c.ClientIP(), c.Request.UserAgent(), claimed)
	util.CallSuccessOK(c, util.APISuccessParams{Data: tokenResponse(sess)})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with name, phone number and password
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body CredentialsRequest true "Credentials"
// @Success      200 {object} TokenResponse "Login successful"
// @Failure      400 {object} util.ErrorResponse "Invalid payload"
// @Failure      401 {object} util.ErrorResponse "Invalid name, phonenumber or password"
// @Failure      429 {object} util.ErrorResponse "Too many requests"
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}

	sess, err := h.Accounts.Login(c.Request.Context(), req.credentials())
	if err != nil {
		if service.KindOf(err) == service.KindUnauthorized {
			util.LogLoginFailure(req.PhoneNumber.String(), c.ClientIP(), c.Request.UserAgent(), "invalid credentials")
		}
		respondError(c, err)
		return
	}
	util.LogLoginSuccess(sess.User.PhoneNumber, sess.User.Role.String(), c.ClientIP(), c.Request.UserAgent())
	util.CallSuccessOK(c, util.APISuccessParams{Data: tokenResponse(sess)})
}

// Logout godoc
// @Summary      Log out
// @Description  Revoke the presented token
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.MessageResponse "Logged out"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Router       /auth/logout [delete]
func (h *Handler) Logout(c *gin.Context) {
	claims, ok := claimsOrRespond(c)
	if !ok {
		return
	}
	if err := h.Accounts.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, err)
		return
	}
	util.LogLogout(claims.PhoneNumber, claims.Role.String(), c.ClientIP(), c.Request.UserAgent())
	util.CallMessage(c, "Logged out")
}

// ResetPhoneNumber godoc
// @Summary      Change phone number
// @Description  Move the caller's own account to a new phone number and issue a new token
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PhoneResetRequest true "Phone numbers"
// @Success      200 {object} TokenResponse "Phone number changed"
// @Failure      400 {object} util.ErrorResponse "Invalid payload"
// @Failure      401 {object} util.ErrorResponse "Unauthorized"
// @Failure      403 {object} util.ErrorResponse "Not your account"
// @Failure      404 {object} util.ErrorResponse "User not found"
// @Failure      409 {object} util.ErrorResponse "Account exists"
// @Router       /auth/phonenumber [patch]
func (h *Handler) ResetPhoneNumber(c *gin.Context) {
	claims, ok := claimsOrRespond(c)
	if !ok {
		return
	}
	var req PhoneResetRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}

	sess, err := h.Accounts.ChangePhoneNumber(c.Request.Context(), claims, service.PhoneResetInput{
		Name:           req.Name,
		OldPhoneNumber: req.OldPhoneNumber.String(),
		NewPhoneNumber: req.NewPhoneNumber.String(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	util.LogPhoneNumberChanged(sess.User.ID, req.OldPhoneNumber.String(), sess.User.PhoneNumber, c.ClientIP())
	util.CallSuccessOK(c, util.APISuccessParams{Data: tokenResponse(sess)})
}
