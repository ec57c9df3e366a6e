package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"groundops.aero/groundops/core"
)

// A nil DB is deliberate: these paths must reject before any store access.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r.Group("/api"), nil, zap.NewNop())
	return r
}

func perform(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginRejectsEmptyFields(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{name: "Both empty", body: `{"employeeID":"","password":""}`},
		{name: "Missing password", body: `{"employeeID":"E1024"}`},
		{name: "Missing employee id", body: `{"password":"secret"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, r, http.MethodPost, "/api/login", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Please enter both Employee ID and password.")
		})
	}
}

func TestListRoutinesEmptyCallerReturnsEmptyList(t *testing.T) {
	r := newTestRouter()

	w := perform(t, r, http.MethodGet, "/api/routine", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []RoutineDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}

func TestCallerRequiredOnRoutineOperations(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "Update", method: http.MethodPut, path: "/api/routine/job-1", body: `{}`},
		{name: "Delete", method: http.MethodDelete, path: "/api/routine/job-1"},
		{name: "Single import", method: http.MethodPost, path: "/api/routine", body: `{}`},
		{name: "Bulk import", method: http.MethodPost, path: "/api/routine/import"},
		{name: "Export", method: http.MethodGet, path: "/api/routine/export"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "employeeID is required")
		})
	}
}

func TestGetPermissionRequiresEmployeeID(t *testing.T) {
	r := newTestRouter()

	w := perform(t, r, http.MethodGet, "/api/permission", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func newStoreRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&core.Employee{}, &core.Routine{}))
	require.NoError(t, db.Create(&core.Employee{EmployeeID: "A1", EncryPw: "pw", Permission: "Admin"}).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r.Group("/api"), db, zap.NewNop())
	return r
}

func TestImportWorkbookRejectsCorruptFile(t *testing.T) {
	r := newStoreRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "routine.xlsx")
	require.NoError(t, err)
	_, err = fw.Write([]byte("this is not an xlsx workbook"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/routine/import?employeeID=A1", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not a valid workbook")
}
