package renderer

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textComponent(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestRendererWritesComponent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, New(c, http.StatusTeapot, textComponent("<p>hello</p>")).Render(w))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "<p>hello</p>", w.Body.String())
}

func TestInstanceFallsBackForNonTemplData(t *testing.T) {
	r := &HTMLTemplRenderer{}
	assert.Nil(t, r.Instance("whatever", map[string]string{"not": "a component"}))
}

func TestInstanceWrapsTemplComponent(t *testing.T) {
	r := &HTMLTemplRenderer{}
	render := r.Instance("", textComponent("x"))
	require.NotNil(t, render)

	w := httptest.NewRecorder()
	require.NoError(t, render.Render(w))
	assert.Equal(t, "x", w.Body.String())
}
