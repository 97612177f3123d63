package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hrm/internal/employee"
	employeeerrors "go-hrm/internal/employee/errors"
	employeeMock "go-hrm/internal/employee/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withEmployee(employeeID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("employee_id", employeeID)
		c.Next()
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestEmployeeHandler_GetMyProfile(t *testing.T) {
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := employeeMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			GetMyProfile(gomock.Any(), employeeID).
			Return(employee.ProfileResponse{
				ID:       employeeID,
				FullName: "Nguyen Van A",
				SensitiveInfo: employee.SensitiveInfoResponse{
					IDNumber: "********1234",
					PendingRequest: &employee.PendingRequest{
						RequestID: "req-1",
						Status:    "AWAITING_APPROVAL",
						CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
					},
				},
			}, nil)

		r := setupRouter()
		h := employee.NewHandler(svc, zap.NewNop())
		r.GET("/employees/me/profile", withEmployee(employeeID), h.GetMyProfile)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/me/profile", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		assert.True(t, env.Ok)

		var got employee.ProfileResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "********1234", got.SensitiveInfo.IDNumber)
		require.NotNil(t, got.SensitiveInfo.PendingRequest)
		assert.Equal(t, "req-1", got.SensitiveInfo.PendingRequest.RequestID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := employeeMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			GetMyProfile(gomock.Any(), employeeID).
			Return(employee.ProfileResponse{}, employeeerrors.ErrEmployeeNotFound)

		r := setupRouter()
		h := employee.NewHandler(svc, zap.NewNop())
		r.GET("/employees/me/profile", withEmployee(employeeID), h.GetMyProfile)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/me/profile", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decode(t, w)
		assert.False(t, env.Ok)
		assert.Equal(t, "Employee not found", env.Error.Message)
	})
}

func TestEmployeeHandler_UpdateBasicInfo(t *testing.T) {
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := employeeMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			UpdateBasicInfo(gomock.Any(), employeeID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req employee.UpdateBasicInfoRequest) (employee.UpdateResult, error) {
				assert.Equal(t, "0909", req.Phone)
				assert.Len(t, req.EmergencyContacts, 1)
				return employee.UpdateResult{Success: true, Message: "Profile updated successfully"}, nil
			})

		r := setupRouter()
		h := employee.NewHandler(svc, zap.NewNop())
		r.PUT("/employees/me/basic-info", withEmployee(employeeID), h.UpdateBasicInfo)

		body := `{"phone":"0909","address":"12 Le Loi","emergencyContacts":[{"name":"B","phone":"0902","relation":"Spouse"}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/employees/me/basic-info", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Profile updated successfully")
	})

	t.Run("invalid personal email", func(t *testing.T) {
		svc := employeeMock.NewMockService(gomock.NewController(t))

		r := setupRouter()
		h := employee.NewHandler(svc, zap.NewNop())
		r.PUT("/employees/me/basic-info", withEmployee(employeeID), h.UpdateBasicInfo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/employees/me/basic-info",
			strings.NewReader(`{"phone":"1","address":"x","personalEmail":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Error.Code)
	})

	t.Run("service validation error", func(t *testing.T) {
		svc := employeeMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			UpdateBasicInfo(gomock.Any(), employeeID, gomock.Any()).
			Return(employee.UpdateResult{}, employeeerrors.ErrEmergencyContactRequired)

		r := setupRouter()
		h := employee.NewHandler(svc, zap.NewNop())
		r.PUT("/employees/me/basic-info", withEmployee(employeeID), h.UpdateBasicInfo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/employees/me/basic-info",
			strings.NewReader(`{"phone":"1","address":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "At least one emergency contact is required", decode(t, w).Error.Message)
	})
}

func TestEmployeeHandler_Create(t *testing.T) {
	actorID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		newID := uuid.New().String()
		svc := employeeMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Create(gomock.Any(), actorID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req employee.CreateEmployeeRequest) (employee.ProfileResponse, error) {
				assert.Equal(t, "Nguyen Van A", req.FullName)
				assert.Equal(t, []string{"Employee"}, req.Roles)
				return employee.ProfileResponse{ID: newID, FullName: req.FullName}, nil
			})

		r := setupRouter()
		h := employee.NewHandler(svc, zap.NewNop())
		r.POST("/hr/employees", withEmployee(actorID), h.Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/hr/employees",
			strings.NewReader(`{"full_name":"Nguyen Van A","email":"a@example.com","roles":["Employee"]}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), newID)
	})

	t.Run("missing email", func(t *testing.T) {
		svc := employeeMock.NewMockService(gomock.NewController(t))

		r := setupRouter()
		h := employee.NewHandler(svc, zap.NewNop())
		r.POST("/hr/employees", withEmployee(actorID), h.Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/hr/employees", strings.NewReader(`{"full_name":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email is required", decode(t, w).Error.Message)
	})

	t.Run("conflict", func(t *testing.T) {
		svc := employeeMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Create(gomock.Any(), actorID, gomock.Any()).
			Return(employee.ProfileResponse{}, employeeerrors.ErrEmployeeAlreadyExists)

		r := setupRouter()
		h := employee.NewHandler(svc, zap.NewNop())
		r.POST("/hr/employees", withEmployee(actorID), h.Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/hr/employees",
			strings.NewReader(`{"full_name":"A","email":"a@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
