package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"core_api/internal/database"
	"core_api/internal/repository"
	"core_api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "handler-test-secret"

// stubAIChecker stands in for the external AI service.
type stubAIChecker struct {
	payload map[string]interface{}
	err     error
}

func (s *stubAIChecker) CheckHealth(context.Context) (map[string]interface{}, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	ai     *stubAIChecker
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	log := logrus.New()
	log.SetOutput(io.Discard)

	ai := &stubAIChecker{payload: map[string]interface{}{"status": "ok"}}

	vehicleService := services.NewVehicleService(repository.NewVehicleRepository(db))
	customerService := services.NewCustomerService(repository.NewCustomerRepository(db))
	workOrderService := services.NewWorkOrderService(repository.NewWorkOrderRepository(db))
	authService := services.NewAuthService(repository.NewUserRepository(db), testJWTSecret)

	router := NewRouter(
		RouterConfig{
			JWTSecret:       testJWTSecret,
			LoginRateLimit:  0,
			LoginRateWindow: time.Minute,
			Logger:          log,
		},
		NewHealthHandler(db, ai),
		NewVehicleHandler(vehicleService),
		NewCustomerHandler(customerService),
		NewWorkOrderHandler(workOrderService),
		NewAuthHandler(authService),
	)

	return &testServer{router: router, db: db, ai: ai}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// seedOwner creates the bootstrap owner and returns a login token.
func (ts *testServer) seedOwner(t *testing.T) string {
	t.Helper()
	require.NoError(t, database.SeedOwner(ts.db, "owner@shop.test", "owner-pass"))

	w := ts.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "owner@shop.test",
		"password": "owner-pass",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

var errStubDown = errors.New("connection refused")
