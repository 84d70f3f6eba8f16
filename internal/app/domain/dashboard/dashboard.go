package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/skillbridge/skillbridge-web/internal/app/domain"
	"github.com/skillbridge/skillbridge-web/internal/app/domain/pages"
	"github.com/skillbridge/skillbridge-web/internal/pkg/middleware"
)

// Handlers serves the role dashboards and the profile page. All routes are
// behind RequireSession, so the session is never nil here.
type Handlers struct {
	*domain.BaseHandler
}

func NewHandlers(base *domain.BaseHandler) *Handlers {
	return &Handlers{BaseHandler: base}
}

func (h *Handlers) StudentDashboard(c *gin.Context) {
	sess := middleware.GetSessionFromContext(c)
	h.RenderPage(c, "Student Dashboard - SkillBridge", pages.Dashboard(sess, "Student Dashboard"))
}

func (h *Handlers) TutorDashboard(c *gin.Context) {
	sess := middleware.GetSessionFromContext(c)
	h.RenderPage(c, "Tutor Dashboard - SkillBridge", pages.Dashboard(sess, "Tutor Dashboard"))
}

func (h *Handlers) AdminDashboard(c *gin.Context) {
	sess := middleware.GetSessionFromContext(c)
	h.RenderPage(c, "Admin Dashboard - SkillBridge", pages.Dashboard(sess, "Admin Dashboard"))
}

func (h *Handlers) Profile(c *gin.Context) {
	sess := middleware.GetSessionFromContext(c)
	h.RenderPage(c, "Profile - SkillBridge", pages.Profile(sess))
}

func (h *Handlers) StudentBookings(c *gin.Context) {
	h.RenderPage(c, "My Bookings - SkillBridge", pages.Placeholder("My Bookings", "Your upcoming and past tutoring sessions will show up here."))
}

func (h *Handlers) BecomeTutor(c *gin.Context) {
	h.RenderPage(c, "Become a Tutor - SkillBridge", pages.Placeholder("Become a Tutor", "Apply to teach on SkillBridge. Applications open soon."))
}

func (h *Handlers) TutorSessions(c *gin.Context) {
	h.RenderPage(c, "My Sessions - SkillBridge", pages.Placeholder("My Sessions", "Sessions students have booked with you will show up here."))
}

func (h *Handlers) TutorAvailability(c *gin.Context) {
	h.RenderPage(c, "Availability - SkillBridge", pages.Placeholder("Availability", "Set the hours students can book you for."))
}
