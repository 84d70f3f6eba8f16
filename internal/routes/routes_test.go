package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge-web/internal/app/observability/metrics"
	"github.com/skillbridge/skillbridge-web/internal/pkg/config"
)

const studentSessionBody = `{
	"user": {
		"id": "user-1",
		"name": "Rahim Uddin",
		"email": "rahim@example.com",
		"emailVerified": true,
		"role": "STUDENT"
	}
}`

// newTestApp wires the full router against a fake auth service.
func newTestApp(t *testing.T, authHandler http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	metrics.InitAppMetrics()

	authSrv := httptest.NewServer(authHandler)
	t.Cleanup(authSrv.Close)

	cfg := &config.Config{
		AuthService: config.AuthServiceConfig{
			BackendURL:  authSrv.URL,
			APIURL:      authSrv.URL + "/api/v1",
			AuthURL:     authSrv.URL + "/api/auth",
			CallbackURL: "http://localhost:3000/",
			FrontendURL: "http://localhost:3000",
		},
		Session: config.SessionConfig{
			CacheTTL:     time.Minute,
			FetchTimeout: 2 * time.Second,
		},
		ServerPort: "3000",
	}

	r := gin.New()
	Setup(r, cfg, zap.NewNop())
	return r
}

func noSession(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusUnauthorized)
}

func studentSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(studentSessionBody))
}

func doGet(router *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPublicPages(t *testing.T) {
	router := newTestApp(t, noSession)

	for _, path := range []string{"/", "/tutors", "/about", "/contact", "/login", "/register"} {
		t.Run(path, func(t *testing.T) {
			w := doGet(router, path, nil)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "SkillBridge")
		})
	}
}

func TestGuestSeesLoginButtons(t *testing.T) {
	router := newTestApp(t, noSession)
	w := doGet(router, "/", nil)
	body := w.Body.String()
	assert.Contains(t, body, `href="/login"`)
	assert.Contains(t, body, `href="/register"`)
	assert.NotContains(t, body, "Log out")
}

func TestAuthenticatedNavbar(t *testing.T) {
	router := newTestApp(t, studentSession)
	w := doGet(router, "/", map[string]string{"Cookie": "sb.sid=abc"})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Rahim Uddin")
	assert.Contains(t, body, `href="/student/dashboard"`)
	assert.NotContains(t, body, ">Sign up<")
}

func TestDashboardGating(t *testing.T) {
	t.Run("GuestIsSentToLogin", func(t *testing.T) {
		router := newTestApp(t, noSession)
		w := doGet(router, "/student/dashboard", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("StudentGetsTheirDashboard", func(t *testing.T) {
		router := newTestApp(t, studentSession)
		w := doGet(router, "/student/dashboard", map[string]string{"Cookie": "sb.sid=abc"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Student Dashboard")
	})

	t.Run("StudentCannotOpenTutorDashboard", func(t *testing.T) {
		router := newTestApp(t, studentSession)
		w := doGet(router, "/tutor/dashboard", map[string]string{"Cookie": "sb.sid=abc"})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/student/dashboard", w.Header().Get("Location"))
	})
}

func TestLoginPageRedirectsSignedInUsers(t *testing.T) {
	router := newTestApp(t, studentSession)
	w := doGet(router, "/login", map[string]string{"Cookie": "sb.sid=abc"})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/student/dashboard", w.Header().Get("Location"))
}

func TestSocialLoginRedirect(t *testing.T) {
	router := newTestApp(t, noSession)
	w := doGet(router, "/auth/social/google", nil)
	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "/api/auth/sign-in/social")
	assert.Contains(t, location, "provider=google")
	assert.Contains(t, location, "callbackURL=")
}

func TestUnknownRouteRenders404(t *testing.T) {
	router := newTestApp(t, noSession)
	w := doGet(router, "/definitely-not-a-page", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404")
}
