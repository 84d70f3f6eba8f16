package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/skillbridge/skillbridge-web/internal/app/domain/nav"
	"github.com/skillbridge/skillbridge-web/internal/app/models"
)

// Layout is the full HTML document: head, navbar, page content, footer.
// Every page renders through it.
func Layout(l models.LayoutTempl) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>%s</title>`+
			`<link rel="stylesheet" href="/assets/css/app.css">`+
			`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`+
			`<script src="/assets/js/app.js" defer></script>`+
			`</head><body class="min-h-screen bg-background text-foreground">`,
			templ.EscapeString(l.Title)); err != nil {
			return err
		}
		if err := nav.Navbar(nav.Props{Session: l.Session, CurrentPath: l.ActivePath}).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main>`); err != nil {
			return err
		}
		if l.Content != nil {
			if err := l.Content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main>`+
			`<footer class="mt-12 border-t py-8"><div class="container mx-auto text-sm text-muted-foreground">`+
			`&copy; SkillBridge. Learn from the best tutors in Bangladesh.`+
			`</div></footer></body></html>`)
		return err
	})
}
