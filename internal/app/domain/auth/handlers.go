package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge-web/internal/app/components/banner"
	"github.com/skillbridge/skillbridge-web/internal/app/domain"
	"github.com/skillbridge/skillbridge-web/internal/app/domain/nav"
	"github.com/skillbridge/skillbridge-web/internal/app/domain/session"
	"github.com/skillbridge/skillbridge-web/internal/app/models"
	"github.com/skillbridge/skillbridge-web/internal/pkg/middleware"
)

const transportMessage = "We could not reach the authentication service. Please try again in a moment."

type Handlers struct {
	*domain.BaseHandler
	gateway  Gateway
	sessions session.Provider
	logger   *zap.Logger
}

func NewHandlers(base *domain.BaseHandler, gateway Gateway, sessions session.Provider, logger *zap.Logger) *Handlers {
	return &Handlers{
		BaseHandler: base,
		gateway:     gateway,
		sessions:    sessions,
		logger:      logger,
	}
}

// LoginPageHandler renders the login form. Signed-in visitors are sent to
// their dashboard instead.
func (h *Handlers) LoginPageHandler(c *gin.Context) {
	if sess := middleware.GetSessionFromContext(c); sess != nil {
		c.Redirect(http.StatusFound, nav.DestinationFor(sess))
		return
	}
	h.RenderPage(c, "Log in - SkillBridge", LoginPage())
}

func (h *Handlers) RegisterPageHandler(c *gin.Context) {
	if sess := middleware.GetSessionFromContext(c); sess != nil {
		c.Redirect(http.StatusFound, nav.DestinationFor(sess))
		return
	}
	h.RenderPage(c, "Sign up - SkillBridge", RegisterPage())
}

func (h *Handlers) LoginHandler(c *gin.Context) {
	cred := Credentials{
		Email:      c.PostForm("email"),
		Password:   c.PostForm("password"),
		RememberMe: c.PostForm("remember_me") == "on" || c.PostForm("remember_me") == "true",
	}

	if errs := Validate(cred); len(errs) > 0 {
		h.renderFieldErrors(c, "#login-response", "login", errs)
		return
	}

	setCookies, err := h.gateway.Login(c.Request.Context(), cred)
	if err != nil {
		h.renderGatewayError(c, "#login-response", "login", err)
		return
	}

	h.finishSignIn(c, setCookies)

	h.logger.Info("Successful login", zap.String("email", cred.Email))
	c.Header("HX-Redirect", "/")
	c.Status(http.StatusOK)
}

func (h *Handlers) RegisterHandler(c *gin.Context) {
	profile := Profile{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Phone:    c.PostForm("phone"),
		Password: c.PostForm("password"),
	}

	if errs := Validate(profile); len(errs) > 0 {
		h.renderFieldErrors(c, "#register-response", "register", errs)
		return
	}

	setCookies, err := h.gateway.Signup(c.Request.Context(), profile)
	if err != nil {
		h.renderGatewayError(c, "#register-response", "register", err)
		return
	}

	h.finishSignIn(c, setCookies)

	h.logger.Info("Successful registration",
		zap.String("email", profile.Email),
		zap.String("name", profile.Name),
	)
	c.Header("HX-Redirect", "/")
	c.Status(http.StatusOK)
}

// LogoutHandler revokes the session upstream and drops the cached copy. The
// user lands on /login no matter what the auth service answered.
func (h *Handlers) LogoutHandler(c *gin.Context) {
	cookieHeader := c.GetHeader("Cookie")

	h.gateway.Logout(c.Request.Context(), cookieHeader)
	h.sessions.Invalidate(cookieHeader)

	h.logger.Info("User logout")

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", "/login")
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// SocialLoginHandler hands the browser to the provider flow.
func (h *Handlers) SocialLoginHandler(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		provider = "google"
	}
	c.Redirect(http.StatusFound, h.gateway.SocialLoginURL(provider))
}

// finishSignIn relays the auth service's session cookies to the browser and
// drops any cached session for the cookies the request came in with.
func (h *Handlers) finishSignIn(c *gin.Context, setCookies []string) {
	for _, cookie := range setCookies {
		c.Writer.Header().Add("Set-Cookie", cookie)
	}
	h.sessions.Invalidate(c.GetHeader("Cookie"))
}

// renderFieldErrors writes one banner per violated rule so the user sees
// everything wrong with the submission at once. The form keeps its state.
func (h *Handlers) renderFieldErrors(c *gin.Context, target, form string, errs []*models.FieldError) {
	c.Header("HX-Retarget", target)
	c.Status(http.StatusBadRequest)
	for i, fieldErr := range errs {
		component := banner.Banner(banner.BannerProps{
			Type:        banner.BannerError,
			Message:     fieldErr.Message,
			Dismissable: true,
			ID:          form + "-invalid-" + fieldErr.Field + "-" + strconv.Itoa(i),
		})
		if err := component.Render(c.Request.Context(), c.Writer); err != nil {
			h.logger.Error("Failed to render banner", zap.Error(err))
		}
	}
}

func (h *Handlers) renderGatewayError(c *gin.Context, target, form string, err error) {
	c.Header("HX-Retarget", target)

	var rejection *models.ServerRejection
	if errors.As(err, &rejection) {
		// The auth service's own words, unedited.
		c.Status(http.StatusUnprocessableEntity)
		h.renderBanner(c, banner.BannerProps{
			Type:        banner.BannerError,
			Message:     rejection.Message,
			Dismissable: true,
			ID:          form + "-rejected",
			AutoDismiss: 8,
		})
		return
	}

	var fieldErr *models.FieldError
	if errors.As(err, &fieldErr) {
		c.Status(http.StatusBadRequest)
		h.renderBanner(c, banner.BannerProps{
			Type:        banner.BannerError,
			Message:     fieldErr.Message,
			Dismissable: true,
			ID:          form + "-invalid",
		})
		return
	}

	h.logger.Error("Auth action failed", zap.Error(err))
	c.Status(http.StatusBadGateway)
	h.renderBanner(c, banner.BannerProps{
		Type:        banner.BannerError,
		Message:     transportMessage,
		Dismissable: true,
		ID:          form + "-unavailable",
		AutoDismiss: 8,
	})
}

func (h *Handlers) renderBanner(c *gin.Context, props banner.BannerProps) {
	if err := banner.Banner(props).Render(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error("Failed to render banner", zap.Error(err))
	}
}
