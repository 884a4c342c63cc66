package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	list := []string{"a", "b", "c"}
	assert.True(t, Contains("b", list))
	assert.False(t, Contains("x", list))
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "trim leading and trailing whitespace", input: "  John Doe  ", expected: "John Doe"},
		{name: "collapse internal spaces", input: "John     Doe", expected: "John Doe"},
		{name: "already normalized", input: "John Doe", expected: "John Doe"},
		{name: "only whitespace", input: "   ", expected: ""},
		{name: "tabs and newlines", input: "John\t\nDoe", expected: "John Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestCapitalizeName(t *testing.T) {
	assert.Equal(t, "Jane Doe", CapitalizeName("jANE   doe"))
	assert.Equal(t, "Élodie", CapitalizeName("élodie"))
	assert.Equal(t, "", CapitalizeName("  "))
}

func TestNameFromPath(t *testing.T) {
	assert.Equal(t, "Jane Doe", NameFromPath("jane_doe"))
	assert.Equal(t, "Mary Ann Lee", NameFromPath("mary_ann__lee"))
	assert.Equal(t, "Ravi", NameFromPath("RAVI"))
}

func TestResponseHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		call     func(c *gin.Context)
		wantCode int
		wantBody string
	}{
		{
			name:     "user error",
			call:     func(c *gin.Context) { CallUserError(c, APIErrorParams{Msg: "Invalid phone number", Err: errors.New("bad")}) },
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid phone number"}`,
		},
		{
			name:     "message falls back to error text",
			call:     func(c *gin.Context) { CallErrorNotFound(c, APIErrorParams{Err: errors.New("User not found")}) },
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"User not found"}`,
		},
		{
			name:     "server error hides details",
			call:     func(c *gin.Context) { CallServerError(c, APIErrorParams{Msg: "db down", Err: errors.New("dial tcp")}) },
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
		{
			name:     "conflict",
			call:     func(c *gin.Context) { CallConflict(c, APIErrorParams{Msg: "exists"}) },
			wantCode: http.StatusConflict,
			wantBody: `{"error":"exists"}`,
		},
		{
			name:     "forbidden",
			call:     func(c *gin.Context) { CallForbidden(c, APIErrorParams{Msg: "nope"}) },
			wantCode: http.StatusForbidden,
			wantBody: `{"error":"nope"}`,
		},
		{
			name:     "unauthorized",
			call:     func(c *gin.Context) { CallUserNotAuthorized(c, APIErrorParams{Msg: "login"}) },
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"login"}`,
		},
		{
			name:     "named success payload",
			call:     func(c *gin.Context) { CallSuccessOK(c, APISuccessParams{Key: "complaints", Data: []string{}}) },
			wantCode: http.StatusOK,
			wantBody: `{"complaints":[]}`,
		},
		{
			name:     "created",
			call:     func(c *gin.Context) { CallCreated(c, APISuccessParams{Key: "message", Data: "ok"}) },
			wantCode: http.StatusCreated,
			wantBody: `{"message":"ok"}`,
		},
		{
			name:     "message",
			call:     func(c *gin.Context) { CallMessage(c, "done") },
			wantCode: http.StatusOK,
			wantBody: `{"message":"done"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			tt.call(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
