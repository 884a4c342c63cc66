package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ariebrainware/dentist-api/auth"
	"github.com/ariebrainware/dentist-api/model"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newCodec() *auth.Codec {
	return auth.NewCodec(testSecret, time.Hour, "test")
}

func tokenFor(t *testing.T, codec *auth.Codec, role model.Role) string {
	t.Helper()
	token, err := codec.Encode(auth.Claims{Name: "Jane Doe", PhoneNumber: "9999999999", Role: role})
	require.NoError(t, err)
	return token
}

// captureSecurityLog routes security events into a buffer for the duration of the test.
func captureSecurityLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	util.SetSecurityLogger(zerolog.New(buf))
	t.Cleanup(func() { util.SetSecurityLogger(zerolog.Nop()) })
	return buf
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
