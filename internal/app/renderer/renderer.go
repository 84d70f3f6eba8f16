package renderer

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// HTMLTemplRenderer lets handlers pass templ components straight to c.HTML.
// Anything that is not a templ.Component falls back to Gin's own renderer.
type HTMLTemplRenderer struct {
	FallbackHTMLRenderer render.HTMLRender
}

func (r *HTMLTemplRenderer) Instance(name string, data any) render.Render {
	component, ok := data.(templ.Component)
	if !ok {
		if r.FallbackHTMLRenderer != nil {
			return r.FallbackHTMLRenderer.Instance(name, data)
		}
		return nil
	}
	return &Renderer{ctx: context.Background(), status: -1, component: component}
}

// New wraps a component so it can be rendered directly onto a ResponseWriter
// with an explicit status code.
func New(c *gin.Context, status int, component templ.Component) *Renderer {
	return &Renderer{ctx: c.Request.Context(), status: status, component: component}
}

type Renderer struct {
	ctx       context.Context
	status    int
	component templ.Component
}

func (t *Renderer) Render(w http.ResponseWriter) error {
	t.WriteContentType(w)
	if t.status != -1 {
		w.WriteHeader(t.status)
	}
	if t.component != nil {
		return t.component.Render(t.ctx, w)
	}
	return nil
}

func (t *Renderer) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}
