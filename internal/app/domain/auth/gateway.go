package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge-web/internal/app/models"
	"github.com/skillbridge/skillbridge-web/internal/pkg/config"
)

// Ensure implementation satisfies the interface
var _ Gateway = (*HTTPGateway)(nil)

// Credentials is a login submission.
type Credentials struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// Profile is a signup submission. Phone is optional; when present it must be
// a Bangladeshi mobile number.
type Profile struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,bd_phone"`
	Password string `json:"password" validate:"required,strong_password"`
}

// Gateway performs authentication actions against the remote auth service.
// Validation runs before any network call; a ValidationError means no bytes
// left this process.
//
// Login and Signup return the auth service's Set-Cookie headers so the
// handler can relay them to the browser; the auth service owns the session
// cookie, this app only forwards it.
type Gateway interface {
	Login(ctx context.Context, cred Credentials) ([]string, error)
	Signup(ctx context.Context, profile Profile) ([]string, error)
	// Logout tells the backend to revoke the session. The response is
	// deliberately ignored; callers redirect to /login no matter what.
	Logout(ctx context.Context, cookieHeader string)
	// SocialLoginURL builds the provider redirect URL. Control leaves this
	// app once the browser follows it.
	SocialLoginURL(provider string) string
}

// HTTPGateway talks to the auth service's JSON endpoints, mirroring what the
// browser client of the auth service would send.
type HTTPGateway struct {
	logger      *zap.Logger
	client      *http.Client
	authURL     string
	backendURL  string
	callbackURL string
}

func NewHTTPGateway(cfg *config.Config, logger *zap.Logger) *HTTPGateway {
	return &HTTPGateway{
		logger:      logger,
		client:      &http.Client{Timeout: cfg.Session.FetchTimeout},
		authURL:     cfg.AuthService.AuthURL,
		backendURL:  cfg.AuthService.BackendURL,
		callbackURL: cfg.AuthService.CallbackURL,
	}
}

// envelope is the auth service's uniform response shape.
type envelope struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *HTTPGateway) Login(ctx context.Context, cred Credentials) ([]string, error) {
	if errs := Validate(cred); len(errs) > 0 {
		return nil, errs[0]
	}
	return g.post(ctx, g.authURL+"/sign-in/email", cred)
}

func (g *HTTPGateway) Signup(ctx context.Context, profile Profile) ([]string, error) {
	if errs := Validate(profile); len(errs) > 0 {
		return nil, errs[0]
	}
	return g.post(ctx, g.authURL+"/sign-up/email", profile)
}

func (g *HTTPGateway) Logout(ctx context.Context, cookieHeader string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.backendURL+"/api/v1/auth/logout", nil)
	if err != nil {
		g.logger.Error("Failed to build logout request", zap.Error(err))
		return
	}
	if cookieHeader != "" {
		req.Header.Set("Cookie", cookieHeader)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		// Logout proceeds locally either way.
		g.logger.Warn("Logout request failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()
}

func (g *HTTPGateway) SocialLoginURL(provider string) string {
	query := url.Values{}
	query.Set("provider", provider)
	query.Set("callbackURL", g.callbackURL)
	return g.authURL + "/sign-in/social?" + query.Encode()
}

// post sends one JSON request and folds the response into the error
// taxonomy: Set-Cookie headers on 2xx, ServerRejection with the service's
// verbatim message on an application-level rejection, ErrTransport on
// anything lower level.
func (g *HTTPGateway) post(ctx context.Context, endpoint string, payload any) ([]string, error) {
	tracer := otel.Tracer("skillbridge-web")
	ctx, span := tracer.Start(ctx, "AuthGateway.post", trace.WithAttributes(
		attribute.String("auth.endpoint", endpoint),
	))
	defer span.End()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("Auth service unreachable",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		span.RecordError(err)
		return nil, models.ErrTransport
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.Header.Values("Set-Cookie"), nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != nil && env.Error.Message != "" {
		return nil, &models.ServerRejection{Message: env.Error.Message}
	}

	g.logger.Error("Auth service returned an unreadable rejection",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
	)
	return nil, models.ErrTransport
}
