package home

import (
	"github.com/gin-gonic/gin"

	"github.com/skillbridge/skillbridge-web/internal/app/domain"
	"github.com/skillbridge/skillbridge-web/internal/app/domain/pages"
)

type HomeHandlers struct {
	*domain.BaseHandler
}

func NewHomeHandlers(base *domain.BaseHandler) *HomeHandlers {
	return &HomeHandlers{BaseHandler: base}
}

// ShowHomePage renders the public landing page. Signed-in users see it too;
// their dashboard is one click away in the navbar.
func (h *HomeHandlers) ShowHomePage(c *gin.Context) {
	h.RenderPage(c, "SkillBridge - Find the Right Tutor", pages.Landing())
}

func (h *HomeHandlers) ShowTutorsPage(c *gin.Context) {
	h.RenderPage(c, "Find Tutors - SkillBridge", pages.Tutors())
}

func (h *HomeHandlers) ShowAboutPage(c *gin.Context) {
	h.RenderPage(c, "About - SkillBridge", pages.About())
}

func (h *HomeHandlers) ShowContactPage(c *gin.Context) {
	h.RenderPage(c, "Contact - SkillBridge", pages.Contact())
}

func (h *HomeHandlers) ShowNotFoundPage(c *gin.Context) {
	h.RenderPageStatus(c, 404, "Page Not Found - SkillBridge", pages.NotFound())
}
