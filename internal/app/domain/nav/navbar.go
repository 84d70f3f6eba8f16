package nav

import (
	"context"
	"fmt"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"

	"github.com/skillbridge/skillbridge-web/internal/app/models"
)

// Props is everything the navbar needs for one render. Desktop and mobile
// variants are two presentations of this one state.
type Props struct {
	Session     *models.Session
	CurrentPath string
}

func linkClasses(active bool, base string) string {
	if active {
		return twmerge.Merge(base, "bg-muted text-accent-foreground")
	}
	return base
}

// Navbar renders the site-wide navigation bar: brand link, the public menu
// with exact-path active highlighting, and either guest buttons or the
// authenticated dashboard link plus identity menu with role-gated entries.
func Navbar(props Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header class="py-4 border-b sticky top-0 z-50 bg-background"><div class="container mx-auto">`); err != nil {
			return err
		}
		if err := desktopNav(props, w); err != nil {
			return err
		}
		if err := mobileNav(props, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div></header>`)
		return err
	})
}

func brandLink(w io.Writer) error {
	_, err := io.WriteString(w, `<a href="/" class="flex items-center gap-2 text-2xl font-bold">SkillBridge</a>`)
	return err
}

func publicMenu(props Props, w io.Writer) error {
	for _, item := range models.PublicNav.Items {
		classes := linkClasses(props.CurrentPath == item.URL,
			"inline-flex h-10 items-center rounded-md px-4 py-2 text-sm font-medium hover:bg-muted")
		attrs := ""
		if props.CurrentPath == item.URL {
			attrs = ` aria-current="page"`
		}
		if _, err := fmt.Fprintf(w, `<a href="%s" class="%s"%s>%s</a>`,
			templ.EscapeString(item.URL), templ.EscapeString(classes), attrs, templ.EscapeString(item.Name)); err != nil {
			return err
		}
	}
	return nil
}

func avatar(sess *models.Session, w io.Writer) error {
	if sess.Image != "" {
		_, err := fmt.Fprintf(w, `<img class="h-10 w-10 rounded-full" src="%s" alt="%s">`,
			templ.EscapeString(sess.Image), templ.EscapeString(sess.Name))
		return err
	}
	_, err := fmt.Fprintf(w, `<span class="flex h-10 w-10 items-center justify-center rounded-full bg-black text-primary-foreground">%s</span>`,
		templ.EscapeString(Initials(sess.Name)))
	return err
}

func identityMenu(sess *models.Session, w io.Writer) error {
	if _, err := io.WriteString(w, `<details class="relative"><summary class="list-none cursor-pointer">`); err != nil {
		return err
	}
	if err := avatar(sess, w); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `</summary><div class="absolute right-0 mt-2 w-56 rounded-md border bg-background p-2 shadow-md">`+
		`<div class="px-2 py-1"><p class="text-sm font-medium">%s</p><p class="text-xs text-muted-foreground">%s</p>`+
		`<span class="inline-flex rounded bg-primary/10 px-2 py-0.5 text-xs font-medium text-primary">%s</span></div><hr class="my-2">`,
		templ.EscapeString(sess.Name), templ.EscapeString(sess.Email), templ.EscapeString(string(sess.Role))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<a href="%s" class="block rounded px-2 py-1.5 text-sm hover:bg-muted">Dashboard</a>`+
		`<a href="/profile" class="block rounded px-2 py-1.5 text-sm hover:bg-muted">Profile</a>`,
		templ.EscapeString(DestinationFor(sess))); err != nil {
		return err
	}
	for _, entry := range MenuFor(sess) {
		if _, err := fmt.Fprintf(w, `<a href="%s" class="block rounded px-2 py-1.5 text-sm hover:bg-muted">%s</a>`,
			templ.EscapeString(entry.URL), templ.EscapeString(entry.Label)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `<hr class="my-2">`+logoutButton("block w-full rounded px-2 py-1.5 text-left text-sm text-destructive hover:bg-muted")+`</div></details>`)
	return err
}

// logoutButton posts to the logout endpoint; the handler answers with a
// redirect to /login whatever the auth service said.
func logoutButton(classes string) string {
	return fmt.Sprintf(`<button type="button" class="%s" hx-post="/auth/logout" hx-disabled-elt="this">Log out</button>`,
		templ.EscapeString(classes))
}

func guestButtons(w io.Writer) error {
	_, err := io.WriteString(w, `<a href="/login" class="inline-flex h-9 items-center rounded-md border px-3 text-sm font-medium">Login</a>`+
		`<a href="/register" class="inline-flex h-9 items-center rounded-md bg-primary px-3 text-sm font-medium text-primary-foreground">Sign up</a>`)
	return err
}

func desktopNav(props Props, w io.Writer) error {
	if _, err := io.WriteString(w, `<nav class="hidden items-center justify-between lg:flex"><div class="flex items-center gap-6">`); err != nil {
		return err
	}
	if err := brandLink(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<div class="flex items-center">`); err != nil {
		return err
	}
	if err := publicMenu(props, w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `</div></div><div class="flex items-center gap-3">`); err != nil {
		return err
	}
	if props.Session != nil {
		if _, err := fmt.Fprintf(w, `<a href="%s" class="inline-flex h-9 items-center rounded-md border px-3 text-sm font-medium">Dashboard</a>`,
			templ.EscapeString(DestinationFor(props.Session))); err != nil {
			return err
		}
		if err := identityMenu(props.Session, w); err != nil {
			return err
		}
	} else {
		if err := guestButtons(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div></nav>`)
	return err
}

func mobileNav(props Props, w io.Writer) error {
	if _, err := io.WriteString(w, `<div class="block px-4 lg:hidden"><div class="flex items-center justify-between">`); err != nil {
		return err
	}
	if err := brandLink(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<details class="relative"><summary class="inline-flex h-9 w-9 cursor-pointer items-center justify-center rounded-md border list-none">&#9776;</summary>`+
		`<div class="absolute right-0 mt-2 w-64 rounded-md border bg-background p-4 shadow-md">`); err != nil {
		return err
	}
	if props.Session != nil {
		if _, err := io.WriteString(w, `<div class="mb-4 flex items-center gap-3 rounded-lg bg-muted p-3">`); err != nil {
			return err
		}
		if err := avatar(props.Session, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<div><p class="text-sm font-medium">%s</p><p class="text-xs text-muted-foreground">%s</p>`+
			`<span class="inline-flex rounded bg-primary/10 px-2 py-0.5 text-xs font-medium text-primary">%s</span></div></div>`,
			templ.EscapeString(props.Session.Name), templ.EscapeString(props.Session.Email), templ.EscapeString(string(props.Session.Role))); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `<div class="flex flex-col gap-2">`); err != nil {
		return err
	}
	if err := publicMenu(props, w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `</div><div class="mt-4 flex flex-col gap-2 border-t pt-4">`); err != nil {
		return err
	}
	if props.Session != nil {
		if _, err := fmt.Fprintf(w, `<a href="%s" class="inline-flex h-9 items-center justify-center rounded-md border px-3 text-sm font-medium">Dashboard</a>`,
			templ.EscapeString(DestinationFor(props.Session))); err != nil {
			return err
		}
		for _, entry := range MenuFor(props.Session) {
			if _, err := fmt.Fprintf(w, `<a href="%s" class="inline-flex h-9 items-center justify-center rounded-md border px-3 text-sm font-medium">%s</a>`,
				templ.EscapeString(entry.URL), templ.EscapeString(entry.Label)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, logoutButton("inline-flex h-9 items-center justify-center rounded-md bg-destructive px-3 text-sm font-medium text-white")); err != nil {
			return err
		}
	} else {
		if err := guestButtons(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div></div></details></div></div>`)
	return err
}
