package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge-web/internal/app/models"
	"github.com/skillbridge/skillbridge-web/internal/app/observability/metrics"
	"github.com/skillbridge/skillbridge-web/internal/pkg/config"
)

func newTestProvider(t *testing.T, authURL string, ttl time.Duration) *HTTPProvider {
	t.Helper()
	metrics.InitAppMetrics()
	return NewHTTPProvider(&config.Config{
		AuthService: config.AuthServiceConfig{AuthURL: authURL},
		Session: config.SessionConfig{
			CacheTTL:     ttl,
			FetchTimeout: 2 * time.Second,
		},
	}, zap.NewNop())
}

const sessionBody = `{
	"user": {
		"id": "user-1",
		"name": "Rahim Uddin",
		"email": "rahim@example.com",
		"emailVerified": true,
		"image": null,
		"role": "STUDENT",
		"createdAt": "2025-01-01T10:00:00Z",
		"updatedAt": "2025-01-02T10:00:00Z"
	}
}`

func TestResolve(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/session", r.URL.Path)
			assert.Equal(t, "sb.sid=abc", r.Header.Get("Cookie"))
			assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(sessionBody))
		}))
		defer srv.Close()

		p := newTestProvider(t, srv.URL, time.Minute)
		sess, err := p.Resolve(context.Background(), "sb.sid=abc")
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.Equal(t, "user-1", sess.UserID)
		assert.Equal(t, "Rahim Uddin", sess.Name)
		assert.Equal(t, models.RoleStudent, sess.Role)
		assert.True(t, sess.EmailVerified)
		assert.Empty(t, sess.Image)
	})

	t.Run("NoCookieSkipsFetch", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected without a cookie header")
		}))
		defer srv.Close()

		p := newTestProvider(t, srv.URL, time.Minute)
		sess, err := p.Resolve(context.Background(), "")
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("NonSuccessStatusIsAbsent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		p := newTestProvider(t, srv.URL, time.Minute)
		sess, err := p.Resolve(context.Background(), "sb.sid=expired")
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("TransportFailureIsAbsent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		p := newTestProvider(t, srv.URL, time.Minute)
		sess, err := p.Resolve(context.Background(), "sb.sid=abc")
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("UnrecognizedRoleMapsToUnknown", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"user": {"id": "u2", "name": "X", "email": "x@example.com", "role": "SUPERUSER"}}`))
		}))
		defer srv.Close()

		p := newTestProvider(t, srv.URL, time.Minute)
		sess, err := p.Resolve(context.Background(), "sb.sid=abc")
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.Equal(t, models.RoleUnknown, sess.Role)
	})

	t.Run("MalformedBodyIsAbsent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer srv.Close()

		p := newTestProvider(t, srv.URL, time.Minute)
		sess, err := p.Resolve(context.Background(), "sb.sid=abc")
		require.NoError(t, err)
		assert.Nil(t, sess)
	})
}

func TestResolveCaching(t *testing.T) {
	t.Run("SecondResolveHitsCache", func(t *testing.T) {
		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(sessionBody))
		}))
		defer srv.Close()

		p := newTestProvider(t, srv.URL, time.Minute)
		_, err := p.Resolve(context.Background(), "sb.sid=abc")
		require.NoError(t, err)
		_, err = p.Resolve(context.Background(), "sb.sid=abc")
		require.NoError(t, err)
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("AbsentSessionIsCachedToo", func(t *testing.T) {
		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		p := newTestProvider(t, srv.URL, time.Minute)
		sess, err := p.Resolve(context.Background(), "sb.sid=dead")
		require.NoError(t, err)
		assert.Nil(t, sess)
		sess, err = p.Resolve(context.Background(), "sb.sid=dead")
		require.NoError(t, err)
		assert.Nil(t, sess)
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("InvalidateForcesRefetch", func(t *testing.T) {
		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(sessionBody))
		}))
		defer srv.Close()

		p := newTestProvider(t, srv.URL, time.Minute)
		_, err := p.Resolve(context.Background(), "sb.sid=abc")
		require.NoError(t, err)

		p.Invalidate("sb.sid=abc")

		_, err = p.Resolve(context.Background(), "sb.sid=abc")
		require.NoError(t, err)
		assert.Equal(t, int64(2), calls.Load())
	})
}
