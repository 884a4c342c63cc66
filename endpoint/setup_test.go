package endpoint

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ariebrainware/dentist-api/auth"
	"github.com/ariebrainware/dentist-api/config"
	"github.com/ariebrainware/dentist-api/model"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret  = "endpoint-test-secret"
	staffPhone  = "9000000001"
	dentistName = "Dr Mehta"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := util.RegisterBindingValidators(); err != nil {
		panic(err)
	}
}

type testEnv struct {
	router  *gin.Engine
	handler *Handler
	db      *gorm.DB
	codec   *auth.Codec
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		AppName:         "Dentist API",
		AppEnv:          "test",
		DBDriver:        "sqlite",
		JWTSecret:       testSecret,
		TokenTTL:        time.Hour,
		TokenIssuer:     "dentist-api",
		CORSOrigins:     []string{"http://localhost:5173"},
		TimeZone:        "Asia/Kolkata",
		PhoneMin:        1000000000,
		PhoneMax:        9999999999,
		LoginRateLimit:  5,
		LoginRateWindow: 15 * time.Minute,
		ReminderAt:      "08:00",
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:endpoint_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))
	return db
}

// newTestEnv builds the full router over an in-memory database. rdb may be nil.
func newTestEnv(t *testing.T, rdb *redis.Client) *testEnv {
	t.Helper()
	cfg := testConfig(t)
	db := setupTestDB(t)
	h := NewHandler(cfg, db, rdb, zerolog.Nop())
	return &testEnv{
		router:  NewRouter(h, cfg),
		handler: h,
		db:      db,
		codec:   auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL, cfg.TokenIssuer),
	}
}

func (e *testEnv) token(t *testing.T, role model.Role, phone, name string) string {
	t.Helper()
	token, err := e.codec.Encode(auth.Claims{Name: name, PhoneNumber: phone, Role: role})
	require.NoError(t, err)
	return token
}

func (e *testEnv) bearer(t *testing.T, role model.Role) map[string]string {
	t.Helper()
	return map[string]string{"Authorization": "Bearer " + e.token(t, role, staffPhone, dentistName)}
}

func (e *testEnv) do(method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	return performRequest(e.router, requestSpec{method: method, requestPath: path, body: body, headers: headers})
}

type requestSpec struct {
	method      string
	requestPath string
	body        interface{}
	headers     map[string]string
}

func performRequest(r *gin.Engine, spec requestSpec) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	var reader *strings.Reader
	setJSONHeader := false
	switch v := spec.body.(type) {
	case nil:
		reader = strings.NewReader("")
	case string:
		reader = strings.NewReader(v)
		setJSONHeader = true
	default:
		b, _ := json.Marshal(spec.body)
		reader = strings.NewReader(string(b))
		setJSONHeader = true
	}

	req := httptest.NewRequest(spec.method, spec.requestPath, reader)
	if setJSONHeader {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range spec.headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			return w, nil, err
		}
	}
	return w, response, nil
}

func registerPayload(phone, name string) map[string]interface{} {
	return map[string]interface{}{
		"phonenumber": phone,
		"details": map[string]interface{}{
			"name":          name,
			"date_of_birth": "1990-01-01",
			"address":       "12 MG Road",
			"gender":        "F",
		},
	}
}

// registerPatient registers a patient through the admin route.
func (e *testEnv) registerPatient(t *testing.T, phone, name string) {
	t.Helper()
	w, _, err := e.do("POST", "/details", registerPayload(phone, name), e.bearer(t, model.RoleAdmin))
	require.NoError(t, err)
	require.Equal(t, 200, w.Code, w.Body.String())
}
