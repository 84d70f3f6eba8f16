package domain

import (
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge-web/internal/app/domain/pages"
	"github.com/skillbridge/skillbridge-web/internal/app/models"
	"github.com/skillbridge/skillbridge-web/internal/app/observability/metrics"
	"github.com/skillbridge/skillbridge-web/internal/app/renderer"
	"github.com/skillbridge/skillbridge-web/internal/pkg/middleware"
)

type BaseHandler struct {
	Logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	return &BaseHandler{Logger: logger}
}

func (h *BaseHandler) newLayoutData(c *gin.Context, title string, content templ.Component) models.LayoutTempl {
	return models.LayoutTempl{
		Title:      title,
		Content:    content,
		Nav:        models.PublicNav,
		ActivePath: c.Request.URL.Path,
		Session:    middleware.GetSessionFromContext(c),
	}
}

func (h *BaseHandler) render(c *gin.Context, status int, component templ.Component) {
	start := time.Now()
	if err := renderer.New(c, status, component).Render(c.Writer); err != nil {
		h.Logger.Error("Failed to render component", zap.Error(err))
	}
	metrics.Get().TemplateRenderDuration.Record(c.Request.Context(), time.Since(start).Seconds())
}

// RenderPage writes a full document, or just the content fragment when the
// request came from HTMX and only a partial swap is needed.
func (h *BaseHandler) RenderPage(c *gin.Context, title string, content templ.Component) {
	h.RenderPageStatus(c, 200, title, content)
}

func (h *BaseHandler) RenderPageStatus(c *gin.Context, status int, title string, content templ.Component) {
	isHTMX := c.GetHeader("HX-Request") == "true"
	if isHTMX {
		h.render(c, status, content)
		return
	}
	h.render(c, status, pages.Layout(h.newLayoutData(c, title, content)))
}
