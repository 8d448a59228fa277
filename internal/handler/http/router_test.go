package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/application"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/auth"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-api/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/query"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService resolves tokens from a fixed table.
type fakeAuthService struct {
	identities map[string]auth.Identity
	registerFn func(req auth.RegisterRequest) (auth.AuthResponse, error)
	loginFn    func(req auth.LoginRequest) (auth.AuthResponse, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	return f.registerFn(req)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	return f.loginFn(req)
}

func (f *fakeAuthService) Me(ctx context.Context, userID string) (user.UserResponse, error) {
	for _, id := range f.identities {
		if id.UserID == userID {
			return user.UserResponse{ID: id.UserID, Username: id.Username, Email: id.Email, Role: string(id.Role)}, nil
		}
	}
	return user.UserResponse{}, user.ErrUserNotFound
}

func (f *fakeAuthService) Authorize(ctx context.Context, token string, allowedRoles ...user.Role) (auth.Identity, error) {
	if token == "" {
		return auth.Identity{}, auth.ErrMissingToken
	}
	identity, ok := f.identities[token]
	if !ok {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	if !user.HasRole(identity.Role, allowedRoles...) {
		return auth.Identity{}, auth.ErrForbidden
	}
	return identity, nil
}

type fakeEmployeeService struct {
	listFn   func(filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error)
	createFn func(req employee.EmployeeRequest) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	return f.listFn(filter)
}

func (f *fakeEmployeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if id == "emp-1" {
		return employee.EmployeeResponse{ID: id, Name: "Alice Johnson", Status: "active"}, nil
	}
	return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeService) CreateEmployee(ctx context.Context, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(req)
}

func (f *fakeEmployeeService) UpdateEmployee(ctx context.Context, id string, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: id, Name: req.Name}, nil
}

func (f *fakeEmployeeService) TerminateEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: id, Status: "terminated"}, nil
}

type fakeApplicationService struct {
	lastReviewer auth.Identity
}

func (f *fakeApplicationService) ListApplications(ctx context.Context, filter application.ApplicationFilter) (application.ListApplicationResponse, error) {
	return query.NewResult([]application.ApplicationResponse{{ID: "app-1"}}, 1, filter.Pagination), nil
}

func (f *fakeApplicationService) GetApplication(ctx context.Context, id string) (application.ApplicationResponse, error) {
	return application.ApplicationResponse{}, application.ErrApplicationNotFound
}

func (f *fakeApplicationService) SubmitApplication(ctx context.Context, req application.CreateApplicationRequest) (application.ApplicationResponse, error) {
	return application.ApplicationResponse{ID: "app-2", FullName: req.FullName, Status: "pending"}, nil
}

func (f *fakeApplicationService) UpdateStatus(ctx context.Context, id string, req application.UpdateStatusRequest, reviewer auth.Identity) (application.ApplicationResponse, error) {
	f.lastReviewer = reviewer
	return application.ApplicationResponse{
		ID:         id,
		Status:     req.Status,
		ReviewedBy: &user.Summary{ID: reviewer.UserID, Username: reviewer.Username, Email: reviewer.Email},
	}, nil
}

type testServer struct {
	router       *chi.Mux
	authSvc      *fakeAuthService
	employeeSvc  *fakeEmployeeService
	applications *fakeApplicationService
}

func newTestServer(t *testing.T, rateLimit int) *testServer {
	t.Helper()

	authSvc := &fakeAuthService{identities: map[string]auth.Identity{
		"hr-token":       {UserID: "user-hr", Username: "hr_manager", Email: "hr@company.com", Role: user.RoleHR},
		"employee-token": {UserID: "user-emp", Username: "employee1", Email: "employee1@company.com", Role: user.RoleEmployee},
	}}
	employeeSvc := &fakeEmployeeService{
		listFn: func(filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
			return query.NewResult([]employee.EmployeeResponse{{ID: "emp-1"}}, 1, filter.Pagination), nil
		},
		createFn: func(req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{ID: "emp-9", Name: req.Name}, nil
		},
	}
	applications := &fakeApplicationService{}

	router := NewRouter(RouterConfig{
		AllowedOrigins:    []string{"*"},
		RateLimitRequests: rateLimit,
		RateLimitWindow:   time.Minute,
	}, authSvc, NewAuthHandler(authSvc), NewEmployeeHandler(employeeSvc), NewApplicationHandler(applications))

	return &testServer{router: router, authSvc: authSvc, employeeSvc: employeeSvc, applications: applications}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t, 0)

	rec := s.do(t, http.MethodGet, "/api/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Employee Management API is running", body["message"])
	assert.NotEmpty(t, body["timestamp"])
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRouter_RouteNotFound(t *testing.T) {
	s := newTestServer(t, 0)

	rec := s.do(t, http.MethodGet, "/api/unknown?x=1", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Route not found", body["message"])
	assert.Equal(t, "/api/unknown?x=1", body["path"])
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t, 0)

	rec := s.do(t, http.MethodPatch, "/api/employees/emp-1", "hr-token", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_AccessPolicy(t *testing.T) {
	s := newTestServer(t, 0)
	newEmployee := map[string]interface{}{"name": "Dan"}

	cases := []struct {
		name    string
		method  string
		path    string
		token   string
		body    interface{}
		want    int
		message string
	}{
		{"list employees without token", http.MethodGet, "/api/employees", "", nil, http.StatusUnauthorized, "No token, authorization denied"},
		{"list employees bad token", http.MethodGet, "/api/employees", "forged", nil, http.StatusUnauthorized, "Token is not valid"},
		{"list employees as employee", http.MethodGet, "/api/employees", "employee-token", nil, http.StatusOK, ""},
		{"get employee as employee", http.MethodGet, "/api/employees/emp-1", "employee-token", nil, http.StatusOK, ""},
		{"create employee as employee", http.MethodPost, "/api/employees", "employee-token", newEmployee, http.StatusForbidden, "Access denied. Insufficient permissions."},
		{"create employee as hr", http.MethodPost, "/api/employees", "hr-token", newEmployee, http.StatusCreated, "Employee created successfully"},
		{"update employee as hr", http.MethodPut, "/api/employees/emp-1", "hr-token", newEmployee, http.StatusOK, "Employee updated successfully"},
		{"delete employee as employee", http.MethodDelete, "/api/employees/emp-1", "employee-token", nil, http.StatusForbidden, "Access denied. Insufficient permissions."},
		{"delete employee as hr", http.MethodDelete, "/api/employees/emp-1", "hr-token", nil, http.StatusOK, "Employee terminated successfully"},
		{"list applications as employee", http.MethodGet, "/api/applications", "employee-token", nil, http.StatusForbidden, "Access denied. Insufficient permissions."},
		{"list applications as hr", http.MethodGet, "/api/applications", "hr-token", nil, http.StatusOK, ""},
		{"submit application anonymously", http.MethodPost, "/api/applications", "", map[string]interface{}{"fullName": "Jane"}, http.StatusCreated, "Application submitted successfully"},
		{"me without token", http.MethodGet, "/api/auth/me", "", nil, http.StatusUnauthorized, "No token, authorization denied"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(t, tc.method, tc.path, tc.token, tc.body)

			require.Equal(t, tc.want, rec.Code, rec.Body.String())
			if tc.message != "" {
				assert.Equal(t, tc.message, decodeBody(t, rec)["message"])
			}
		})
	}
}

func TestRouter_ListEmployees_QueryParameters(t *testing.T) {
	s := newTestServer(t, 0)

	var got employee.EmployeeFilter
	s.employeeSvc.listFn = func(filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
		got = filter
		return query.NewResult([]employee.EmployeeResponse{}, 25, filter.Pagination), nil
	}

	rec := s.do(t, http.MethodGet, "/api/employees?page=3&limit=abc&department=Sales&search=ann", "employee-token", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, query.Pagination{Page: 3, Limit: 10}, got.Pagination)
	assert.Equal(t, "Sales", got.Department)
	assert.Equal(t, "ann", got.Search)

	body := decodeBody(t, rec)
	assert.Equal(t, []interface{}{}, body["items"])
	assert.Equal(t, float64(3), body["totalPages"])
	assert.Equal(t, float64(3), body["currentPage"])
	assert.Equal(t, float64(25), body["total"])
}

func TestRouter_GetEmployee_NotFound(t *testing.T) {
	s := newTestServer(t, 0)

	rec := s.do(t, http.MethodGet, "/api/employees/missing", "employee-token", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Employee not found", decodeBody(t, rec)["message"])
}

func TestRouter_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		check  func(t *testing.T, body map[string]interface{})
	}{
		{
			name:   "validation",
			err:    validator.ValidationErrors{{Field: "name", Message: "Name is required"}},
			status: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Validation failed", body["message"])
				errs := body["errors"].([]interface{})
				require.Len(t, errs, 1)
				assert.Equal(t, map[string]interface{}{"field": "name", "message": "Name is required"}, errs[0])
			},
		},
		{
			name:   "conflict",
			err:    employee.ErrEmailExists,
			status: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Employee with this email already exists", body["message"])
			},
		},
		{
			name:   "duplicate key",
			err:    &database.DuplicateKeyError{Field: "email"},
			status: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Duplicate field value", body["message"])
				assert.Equal(t, "email", body["field"])
			},
		},
		{
			name:   "storage validation",
			err:    &database.ConstraintError{Messages: []string{"salary is invalid"}},
			status: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Validation Error", body["message"])
				assert.Equal(t, []interface{}{"salary is invalid"}, body["errors"])
			},
		},
		{
			name:   "internal",
			err:    errors.New("dial tcp: connection refused"),
			status: http.StatusInternalServerError,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Internal server error", body["message"])
				assert.Equal(t, "Something went wrong", body["error"])
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t, 0)
			s.employeeSvc.createFn = func(req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, tc.err
			}

			rec := s.do(t, http.MethodPost, "/api/employees", "hr-token", map[string]interface{}{"name": ""})

			require.Equal(t, tc.status, rec.Code)
			tc.check(t, decodeBody(t, rec))
		})
	}
}

func TestRouter_InternalErrorDetailInDevelopment(t *testing.T) {
	response.SetDevelopment(true)
	t.Cleanup(func() { response.SetDevelopment(false) })

	s := newTestServer(t, 0)
	s.employeeSvc.createFn = func(req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
		return employee.EmployeeResponse{}, errors.New("dial tcp: connection refused")
	}

	rec := s.do(t, http.MethodPost, "/api/employees", "hr-token", map[string]interface{}{})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "dial tcp: connection refused", decodeBody(t, rec)["error"])
}

func TestRouter_InvalidJSON(t *testing.T) {
	s := newTestServer(t, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/applications", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request format", decodeBody(t, rec)["message"])
}

func TestRouter_UpdateApplicationStatus_UsesCallerIdentity(t *testing.T) {
	s := newTestServer(t, 0)

	rec := s.do(t, http.MethodPut, "/api/applications/app-1/status", "hr-token", map[string]interface{}{"status": "reviewing"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-hr", s.applications.lastReviewer.UserID)

	body := decodeBody(t, rec)
	assert.Equal(t, "Application status updated successfully", body["message"])
	app := body["application"].(map[string]interface{})
	assert.Equal(t, "reviewing", app["status"])
	reviewer := app["reviewedBy"].(map[string]interface{})
	assert.Equal(t, "hr_manager", reviewer["username"])
}

func TestRouter_AuthEndpoints(t *testing.T) {
	s := newTestServer(t, 0)
	s.authSvc.registerFn = func(req auth.RegisterRequest) (auth.AuthResponse, error) {
		return auth.AuthResponse{
			Token: "signed",
			User:  user.UserResponse{ID: "user-new", Username: req.Username, Email: req.Email, Role: "employee"},
		}, nil
	}
	s.authSvc.loginFn = func(req auth.LoginRequest) (auth.AuthResponse, error) {
		return auth.AuthResponse{}, auth.ErrAccountInactive
	}

	rec := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"username": "new_user", "email": "new@company.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.Equal(t, "signed", body["token"])
	assert.Equal(t, "new_user", body["user"].(map[string]interface{})["username"])
	assert.NotContains(t, rec.Body.String(), "secret123")

	rec = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{"username": "ghost", "password": "x"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials or account inactive", decodeBody(t, rec)["message"])

	rec = s.do(t, http.MethodGet, "/api/auth/me", "hr-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hr_manager", decodeBody(t, rec)["user"].(map[string]interface{})["username"])
}

func TestRouter_RateLimit(t *testing.T) {
	s := newTestServer(t, 2)

	for i := 0; i < 2; i++ {
		rec := s.do(t, http.MethodGet, "/api/health", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := s.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests from this IP, please try again later.", decodeBody(t, rec)["message"])
}

func TestRouter_RateLimitCountsEveryPath(t *testing.T) {
	s := newTestServer(t, 2)

	rec := s.do(t, http.MethodGet, "/unknown", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/favicon.ico", "", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
