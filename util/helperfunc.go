package util

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid phone number"`
}

// MessageResponse is the body of requests that only report an outcome.
type MessageResponse struct {
	Message string `json:"message" example:"Patient registered"`
}

// APIErrorParams carries the client-facing message and the underlying error for logging.
type APIErrorParams struct {
	Msg string
	Err error
}

// APISuccessParams carries the named payload of a successful response.
// Key is the top-level field the data is served under.
type APISuccessParams struct {
	Key  string
	Data interface{}
}

// Contains function is to check item whether is exist or not in a list and will return bool
func Contains(d string, dl []string) bool {
	for _, v := range dl {
		if v == d {
			return true
		}
	}
	return false
}

func callError(c *gin.Context, status int, params APIErrorParams) {
	msg := params.Msg
	if msg == "" && params.Err != nil {
		msg = params.Err.Error()
	}
	if params.Err != nil {
		_ = c.Error(params.Err)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}

// CallErrorNotFound is for return API response not found
func CallErrorNotFound(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusNotFound, params)
}

// CallUserError is for return error from user side
func CallUserError(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusBadRequest, params)
}

// CallConflict reports a unique constraint violation.
func CallConflict(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusConflict, params)
}

// CallTooManyRequests reports a rate limit hit.
func CallTooManyRequests(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusTooManyRequests, params)
}

// CallServerError is for return API response server error. The underlying
// error is recorded on the context but never sent to the client.
func CallServerError(c *gin.Context, params APIErrorParams) {
	if params.Err != nil {
		_ = c.Error(params.Err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// CallServiceUnavailable reports a dependency that is down.
func CallServiceUnavailable(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusServiceUnavailable, params)
}

// CallUserNotAuthorized is for return API response with status code 401
func CallUserNotAuthorized(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusUnauthorized, params)
}

// CallForbidden is for a valid caller that may not perform the operation.
func CallForbidden(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusForbidden, params)
}

func success(c *gin.Context, status int, params APISuccessParams) {
	if params.Key == "" {
		c.JSON(status, params.Data)
		return
	}
	c.JSON(status, gin.H{params.Key: params.Data})
}

// CallSuccessOK is for return API response with status code 200, the payload is served under params.Key
func CallSuccessOK(c *gin.Context, params APISuccessParams) {
	success(c, http.StatusOK, params)
}

// CallCreated is CallSuccessOK with status code 201.
func CallCreated(c *gin.Context, params APISuccessParams) {
	success(c, http.StatusCreated, params)
}

// CallMessage responds 200 with {"message": msg}.
func CallMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResponse{Message: msg})
}

// NormalizeName normalizes a name by trimming leading/trailing whitespace
// and collapsing multiple internal spaces into single spaces.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// CapitalizeName normalizes name and title-cases every word: "jANE  doe" becomes "Jane Doe".
func CapitalizeName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// NameFromPath turns a snake_case path segment into a display name: "jane_doe" becomes "Jane Doe".
func NameFromPath(segment string) string {
	return CapitalizeName(strings.ReplaceAll(segment, "_", " "))
}
