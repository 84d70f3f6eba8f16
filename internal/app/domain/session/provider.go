package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge-web/internal/app/models"
	"github.com/skillbridge/skillbridge-web/internal/app/observability/metrics"
	"github.com/skillbridge/skillbridge-web/internal/pkg/config"
)

// Ensure implementation satisfies the interface
var _ Provider = (*HTTPProvider)(nil)

// Provider resolves the current identity from the remote auth service.
//
// An absent session (no cookie, expired cookie, auth service said no) is a
// normal state and is reported as (nil, nil). Errors are reserved for
// conditions the caller could act on; transport failures are logged and also
// reported as absent so a render never breaks on a flaky auth service.
type Provider interface {
	Resolve(ctx context.Context, cookieHeader string) (*models.Session, error)
	// Invalidate drops any cached session for the given cookie header. Called
	// after logout so the next resolution goes back to the auth service.
	Invalidate(cookieHeader string)
}

// HTTPProvider fetches sessions from the auth service's session endpoint,
// forwarding the browser's cookies. Results are cached for a short TTL so a
// single page render costs at most one upstream round trip.
type HTTPProvider struct {
	logger   *zap.Logger
	client   *http.Client
	cache    *gocache.Cache
	cacheTTL time.Duration
	authURL  string
}

// cacheEntry wraps the result so that "known absent" is cacheable too.
type cacheEntry struct {
	session *models.Session
}

func NewHTTPProvider(cfg *config.Config, logger *zap.Logger) *HTTPProvider {
	return &HTTPProvider{
		logger:   logger,
		client:   &http.Client{Timeout: cfg.Session.FetchTimeout},
		cache:    gocache.New(cfg.Session.CacheTTL, 2*cfg.Session.CacheTTL),
		cacheTTL: cfg.Session.CacheTTL,
		authURL:  cfg.AuthService.AuthURL,
	}
}

// wire format of the auth service's session response
type sessionUser struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	Image         *string   `json:"image"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type sessionEnvelope struct {
	User *sessionUser `json:"user"`
}

func (p *HTTPProvider) Resolve(ctx context.Context, cookieHeader string) (*models.Session, error) {
	if cookieHeader == "" {
		return nil, nil
	}

	if cached, found := p.cache.Get(cookieHeader); found {
		metrics.Get().SessionCacheHitsTotal.Add(ctx, 1)
		return cached.(cacheEntry).session, nil
	}

	sess := p.fetch(ctx, cookieHeader)
	p.cache.Set(cookieHeader, cacheEntry{session: sess}, p.cacheTTL)
	return sess, nil
}

func (p *HTTPProvider) Invalidate(cookieHeader string) {
	if cookieHeader != "" {
		p.cache.Delete(cookieHeader)
	}
}

// fetch performs one round trip against the session endpoint. Any failure
// resolves to an absent session.
func (p *HTTPProvider) fetch(ctx context.Context, cookieHeader string) *models.Session {
	tracer := otel.Tracer("skillbridge-web")
	ctx, span := tracer.Start(ctx, "SessionProvider.fetch", trace.WithAttributes(
		attribute.String("auth.endpoint", p.authURL+"/session"),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		m := metrics.Get()
		m.SessionFetchesTotal.Add(ctx, 1)
		m.SessionFetchDuration.Record(ctx, time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.authURL+"/session", nil)
	if err != nil {
		p.logger.Error("Failed to build session request", zap.Error(err))
		return nil
	}
	req.Header.Set("Cookie", cookieHeader)
	// Always revalidate against the auth service, never serve stale.
	req.Header.Set("Cache-Control", "no-store")

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("Session fetch failed, treating as logged out",
			zap.Error(fmt.Errorf("%w: %v", models.ErrTransport, err)))
		span.RecordError(err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// No active session. Normal state, not an error.
		return nil
	}

	var envelope sessionEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		p.logger.Warn("Failed to decode session response, treating as logged out", zap.Error(err))
		span.RecordError(err)
		return nil
	}
	if envelope.User == nil {
		return nil
	}

	sess := &models.Session{
		UserID:        envelope.User.ID,
		Name:          envelope.User.Name,
		Email:         envelope.User.Email,
		EmailVerified: envelope.User.EmailVerified,
		Role:          models.ParseRole(envelope.User.Role),
		CreatedAt:     envelope.User.CreatedAt,
		UpdatedAt:     envelope.User.UpdatedAt,
	}
	if envelope.User.Image != nil {
		sess.Image = *envelope.User.Image
	}
	return sess
}
