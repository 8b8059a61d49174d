package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/campushire/campushire/internal/app/auth"
	"github.com/campushire/campushire/internal/app/controllers"
	appservices "github.com/campushire/campushire/internal/app/services"
	"github.com/campushire/campushire/internal/middleware"
	pkgauth "github.com/campushire/campushire/internal/pkg/auth"
	"github.com/campushire/campushire/internal/testutil"
)

// newTestRouter wires the full HTTP stack against in-memory stores.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	_, stores := testutil.NewStores()
	authz := appauth.NewAuthorizationService(stores.Users, stores.Jobs, stores.Applications, stores.Projects)
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	nop := zerolog.Nop()

	authService := appservices.NewAuthService(stores.Users, stores.Colleges, jwtService, nop)
	studentService := appservices.NewStudentService(stores.Users, stores.Jobs, stores.Applications, stores.Projects, authz, nil, nop)
	collegeService := appservices.NewCollegeService(stores.Users, stores.Colleges, stores.Jobs, stores.Applications, authz, nop)
	recruiterService := appservices.NewRecruiterService(stores.Colleges, stores.Jobs, stores.Applications, authz, nop)

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(authService, nop),
		controllers.NewStudentController(studentService, nop),
		controllers.NewCollegeController(collegeService, nop),
		controllers.NewRecruiterController(recruiterService, nop),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeData(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

type authPayload struct {
	Token struct {
		AccessToken string `json:"accessToken"`
	} `json:"token"`
	User struct {
		ID        int64  `json:"id"`
		CollegeID *int64 `json:"collegeId"`
	} `json:"user"`
}

func register(t *testing.T, router *gin.Engine, body map[string]interface{}) authPayload {
	t.Helper()
	recorder := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var payload authPayload
	decodeData(t, recorder, &payload)
	require.NotEmpty(t, payload.Token.AccessToken)
	return payload
}

func TestPlacementFlow(t *testing.T) {
	router := newTestRouter(t)

	// A college registers itself, which creates the college record.
	college := register(t, router, map[string]interface{}{
		"name":     "City University",
		"email":    "placement@city.edu",
		"password": "secret123",
		"role":     "College",
	})
	require.NotNil(t, college.User.CollegeID)
	collegeID := *college.User.CollegeID

	recruiter := register(t, router, map[string]interface{}{
		"name":     "Bob",
		"email":    "bob@acme.com",
		"password": "secret123",
		"role":     "Recruiter",
		"company":  "Acme Corp",
	})

	student := register(t, router, map[string]interface{}{
		"name":     "Alice",
		"email":    "alice@city.edu",
		"password": "secret123",
		"role":     "Student",
		"college":  collegeID,
	})

	// The recruiter posts a job targeting the college; it starts Pending.
	recorder := doJSON(t, router, http.MethodPost, "/api/v1/recruiter/jobs", recruiter.Token.AccessToken, map[string]interface{}{
		"title":       "Backend Engineer",
		"description": "Go services",
		"college":     collegeID,
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var job struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	decodeData(t, recorder, &job)
	assert.Equal(t, "Pending", job.Status)

	// Pending jobs are invisible to the student.
	recorder = doJSON(t, router, http.MethodGet, "/api/v1/student/jobs", student.Token.AccessToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var jobs []json.RawMessage
	decodeData(t, recorder, &jobs)
	assert.Empty(t, jobs)

	// The college sees it in the moderation queue and approves it.
	recorder = doJSON(t, router, http.MethodGet, "/api/v1/college/jobs?status=Pending", college.Token.AccessToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	decodeData(t, recorder, &jobs)
	require.Len(t, jobs, 1)

	recorder = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/college/jobs/%d/status", job.ID), college.Token.AccessToken, map[string]interface{}{
		"status": "Approved",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	// Approved, the job shows up and the student applies.
	recorder = doJSON(t, router, http.MethodGet, "/api/v1/student/jobs", student.Token.AccessToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	decodeData(t, recorder, &jobs)
	require.Len(t, jobs, 1)

	recorder = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/student/jobs/%d/apply", job.ID), student.Token.AccessToken, nil)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var application struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	decodeData(t, recorder, &application)
	assert.Equal(t, "Applied", application.Status)

	// A second application to the same job is a conflict.
	recorder = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/student/jobs/%d/apply", job.ID), student.Token.AccessToken, nil)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	// The recruiter reviews the application and shortlists the candidate.
	recorder = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/recruiter/jobs/%d/applications", job.ID), recruiter.Token.AccessToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var received []json.RawMessage
	decodeData(t, recorder, &received)
	require.Len(t, received, 1)

	recorder = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/recruiter/applications/%d/status", application.ID), recruiter.Token.AccessToken, map[string]interface{}{
		"status": "Shortlisted",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	// The college dashboard reflects the state.
	recorder = doJSON(t, router, http.MethodGet, "/api/v1/college/stats", college.Token.AccessToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var stats struct {
		TotalStudents int64 `json:"totalStudents"`
		ActiveJobs    int64 `json:"activeJobs"`
	}
	decodeData(t, recorder, &stats)
	assert.Equal(t, int64(1), stats.TotalStudents)
	assert.Equal(t, int64(1), stats.ActiveJobs)
}

func TestRouteAuthorization(t *testing.T) {
	router := newTestRouter(t)

	college := register(t, router, map[string]interface{}{
		"name":     "City University",
		"email":    "placement@city.edu",
		"password": "secret123",
		"role":     "College",
	})
	collegeID := *college.User.CollegeID

	alice := register(t, router, map[string]interface{}{
		"name":     "Alice",
		"email":    "alice@city.edu",
		"password": "secret123",
		"role":     "Student",
		"college":  collegeID,
	})

	// No token at all.
	recorder := doJSON(t, router, http.MethodGet, "/api/v1/student/jobs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// A garbage token.
	recorder = doJSON(t, router, http.MethodGet, "/api/v1/student/jobs", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// A student calling a college endpoint.
	recorder = doJSON(t, router, http.MethodGet, "/api/v1/college/stats", alice.Token.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	// A student calling a recruiter endpoint.
	recorder = doJSON(t, router, http.MethodGet, "/api/v1/recruiter/candidates", alice.Token.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	// The college directory is public.
	recorder = doJSON(t, router, http.MethodGet, "/api/v1/colleges", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	register(t, router, map[string]interface{}{
		"name":     "Bob",
		"email":    "bob@acme.com",
		"password": "secret123",
		"role":     "Recruiter",
	})

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "bob@acme.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "bob@acme.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
