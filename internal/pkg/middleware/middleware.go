package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge-web/internal/app/domain/nav"
	"github.com/skillbridge/skillbridge-web/internal/app/domain/session"
	"github.com/skillbridge/skillbridge-web/internal/app/models"
	"github.com/skillbridge/skillbridge-web/internal/app/observability/metrics"
)

// Define typed context keys
type contextKey string

const SessionContextKey contextKey = "session"

// ResolveSession resolves the browser's cookies into a session once per
// request and stores the result in the Gin context. Absent sessions are
// stored as a nil pointer; downstream handlers never talk to the auth
// service themselves.
func ResolveSession(provider session.Provider, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := provider.Resolve(c.Request.Context(), c.GetHeader("Cookie"))
		if err != nil {
			logger.Warn("Session resolution failed, continuing as guest", zap.Error(err))
		}
		if sess != nil {
			c.Set(string(SessionContextKey), sess)
		}
		c.Next()
	}
}

// GetSessionFromContext extracts the resolved session from the Gin context.
// Returns nil when the visitor is a guest.
func GetSessionFromContext(c *gin.Context) *models.Session {
	value, exists := c.Get(string(SessionContextKey))
	if !exists {
		return nil
	}

	sess, ok := value.(*models.Session)
	if !ok {
		return nil
	}

	return sess
}

// RequireSession rejects guests. Must run after ResolveSession.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSessionFromContext(c) == nil {
			handleAuthRedirect(c, "/login")
			return
		}
		c.Next()
	}
}

// RequireRole rejects sessions whose role is not the required one. A user
// with the wrong role is sent to their own dashboard, not to login.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSessionFromContext(c)
		if sess == nil {
			handleAuthRedirect(c, "/login")
			return
		}
		if sess.Role != role {
			handleAuthRedirect(c, nav.DestinationFor(sess))
			return
		}
		c.Next()
	}
}

// handleAuthRedirect handles redirects for both regular and HTMX requests
func handleAuthRedirect(c *gin.Context, redirectURL string) {
	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", redirectURL)
		c.AbortWithStatus(http.StatusUnauthorized)
	} else {
		c.Redirect(http.StatusFound, redirectURL)
		c.Abort()
	}
}

// RequestIDMiddleware assigns every request an ID, echoed in the response
// and picked up by the logging middleware's context function.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Request.Header.Set("X-Request-Id", requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Next()
	}
}

// CORSMiddleware handles CORS headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, HX-Request, HX-Target, HX-Current-URL")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("X-XSS-Protection", "1; mode=block")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Content Security Policy for HTMX and external resources
		csp := "default-src 'self'; " +
			"script-src 'self' 'unsafe-inline' https://unpkg.com https://cdn.jsdelivr.net; " +
			"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
			"font-src 'self' https://fonts.gstatic.com; " +
			"img-src 'self' data: https:; " +
			"connect-src 'self'"
		c.Writer.Header().Set("Content-Security-Policy", csp)

		c.Next()
	}
}

// OTELGinMiddleware returns the OpenTelemetry middleware for Gin
func OTELGinMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}

// ObservabilityMiddleware records request count and duration metrics.
func ObservabilityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		m := metrics.Get()
		m.HTTPRequestsTotal.Add(c.Request.Context(), 1,
			metric.WithAttributes(
				attribute.String("method", c.Request.Method),
				attribute.String("path", path),
				attribute.String("status", status),
			))
		m.HTTPRequestDuration.Record(c.Request.Context(), duration,
			metric.WithAttributes(
				attribute.String("method", c.Request.Method),
				attribute.String("path", path),
			))

		if path == "/auth/login" || path == "/auth/register" || path == "/auth/logout" {
			m.AuthRequestsTotal.Add(c.Request.Context(), 1,
				metric.WithAttributes(
					attribute.String("endpoint", path),
					attribute.String("status", status),
				))
		}
	}
}
