package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge-web/internal/app/domain"
	"github.com/skillbridge/skillbridge-web/internal/app/domain/auth"
	"github.com/skillbridge/skillbridge-web/internal/app/domain/dashboard"
	"github.com/skillbridge/skillbridge-web/internal/app/domain/home"
	"github.com/skillbridge/skillbridge-web/internal/app/domain/session"
	"github.com/skillbridge/skillbridge-web/internal/app/models"
	"github.com/skillbridge/skillbridge-web/internal/app/renderer"
	"github.com/skillbridge/skillbridge-web/internal/pkg/config"
	"github.com/skillbridge/skillbridge-web/internal/pkg/middleware"
)

type AppHandlers struct {
	Home      *home.HomeHandlers
	Auth      *auth.Handlers
	Dashboard *dashboard.Handlers

	Sessions session.Provider
}

func Setup(r *gin.Engine, cfg *config.Config, log *zap.Logger) {
	// Setup custom templ renderer
	ginHTMLRenderer := r.HTMLRender
	r.HTMLRender = &renderer.HTMLTemplRenderer{FallbackHTMLRenderer: ginHTMLRenderer}

	handlers := setupDependencies(cfg, log)
	setupRouter(r, handlers, log)
}

func setupDependencies(cfg *config.Config, log *zap.Logger) *AppHandlers {
	baseHandler := domain.NewBaseHandler(log)

	sessions := session.NewHTTPProvider(cfg, log)
	gateway := auth.NewHTTPGateway(cfg, log)

	return &AppHandlers{
		Home:      home.NewHomeHandlers(baseHandler),
		Auth:      auth.NewHandlers(baseHandler, gateway, sessions, log),
		Dashboard: dashboard.NewHandlers(baseHandler),
		Sessions:  sessions,
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers, log *zap.Logger) {
	// Every route resolves the session once; handlers and the navbar read it
	// from the request context.
	r.Use(middleware.ResolveSession(h.Sessions, log))

	public := r.Group("/")
	{
		public.GET("/", h.Home.ShowHomePage)
		public.GET("/tutors", h.Home.ShowTutorsPage)
		public.GET("/about", h.Home.ShowAboutPage)
		public.GET("/contact", h.Home.ShowContactPage)
		public.GET("/login", h.Auth.LoginPageHandler)
		public.GET("/register", h.Auth.RegisterPageHandler)
	}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.LoginHandler)
		authGroup.POST("/register", h.Auth.RegisterHandler)
		authGroup.POST("/logout", h.Auth.LogoutHandler)
		authGroup.GET("/social/:provider", h.Auth.SocialLoginHandler)
	}

	student := r.Group("/student")
	student.Use(middleware.RequireRole(models.RoleStudent))
	{
		student.GET("/dashboard", h.Dashboard.StudentDashboard)
		student.GET("/bookings", h.Dashboard.StudentBookings)
		student.GET("/become-tutor", h.Dashboard.BecomeTutor)
	}

	tutor := r.Group("/tutor")
	tutor.Use(middleware.RequireRole(models.RoleTutor))
	{
		tutor.GET("/dashboard", h.Dashboard.TutorDashboard)
		tutor.GET("/sessions", h.Dashboard.TutorSessions)
		tutor.GET("/availability", h.Dashboard.TutorAvailability)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/dashboard", h.Dashboard.AdminDashboard)
	}

	profile := r.Group("/profile")
	profile.Use(middleware.RequireSession())
	{
		profile.GET("", h.Dashboard.Profile)
	}

	r.NoRoute(h.Home.ShowNotFoundPage)
}
