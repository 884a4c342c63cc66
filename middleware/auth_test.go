package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ariebrainware/dentist-api/auth"
	"github.com/ariebrainware/dentist-api/model"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(codec *auth.Codec, sessions *util.SessionStore, roles ...model.Role) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireRoles(auth.NewGuard(codec), sessions, model.NewRoleSet(roles...)), func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": claims.Role})
	})
	return r
}

func get(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestRequireRoles_AllowedRole(t *testing.T) {
	codec := newCodec()
	r := protectedRouter(codec, util.NewSessionStore(nil), model.RoleAdmin, model.RoleDentist)

	w := serve(r, get(tokenFor(t, codec, model.RoleDentist)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"dentist"}`, w.Body.String())
}

func TestRequireRoles_AnyRole(t *testing.T) {
	codec := newCodec()
	r := protectedRouter(codec, util.NewSessionStore(nil))

	for _, role := range model.Roles {
		w := serve(r, get(tokenFor(t, codec, role)))
		assert.Equal(t, http.StatusOK, w.Code, role)
	}
}

func TestRequireRoles_ForbiddenRole(t *testing.T) {
	buf := captureSecurityLog(t)
	codec := newCodec()
	r := protectedRouter(codec, util.NewSessionStore(nil), model.RoleAdmin)

	w := serve(r, get(tokenFor(t, codec, model.RolePatient)))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "patient")
	assert.Contains(t, buf.String(), "FORBIDDEN_ACCESS")
}

func TestRequireRoles_Unauthorized(t *testing.T) {
	codec := newCodec()
	r := protectedRouter(codec, util.NewSessionStore(nil), model.RoleAdmin)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Name:        "Jane Doe",
		PhoneNumber: "9999999999",
		Role:        model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	otherSecret := tokenFor(t, auth.NewCodec("another-secret", time.Hour, "test"), model.RoleAdmin)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "Authorization header is required"},
		{"malformed header", "Token abc", "Authorization header must be 'Bearer <token>'"},
		{"garbage token", "Bearer not.a.jwt", "Invalid token"},
		{"expired token", "Bearer " + expired, "Token has expired"},
		{"bad signature", "Bearer " + otherSecret, "Invalid token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(r, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.message+`"}`, w.Body.String())
		})
	}
}

func TestRequireRoles_RevokedToken(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	sessions := util.NewSessionStore(rdb)
	codec := newCodec()

	token := tokenFor(t, codec, model.RolePatient)
	claims, err := codec.Decode(token)
	require.NoError(t, err)

	r := protectedRouter(codec, sessions, model.RolePatient)
	assert.Equal(t, http.StatusOK, serve(r, get(token)).Code)

	require.NoError(t, sessions.RevokeToken(t.Context(), claims.ID, time.Hour))
	w := serve(r, get(token))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Token has been revoked"}`, w.Body.String())

	// revocation wins over a role mismatch
	admins := protectedRouter(codec, sessions, model.RoleAdmin)
	assert.Equal(t, http.StatusUnauthorized, serve(admins, get(token)).Code)
}

func TestRequireRoles_SessionStoreDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	codec := newCodec()
	r := protectedRouter(codec, util.NewSessionStore(rdb), model.RoleAdmin)

	mr.Close()
	w := serve(r, get(tokenFor(t, codec, model.RoleAdmin)))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
