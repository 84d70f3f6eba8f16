package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/skillbridge/skillbridge-web/internal/app/models"
)

// Landing is the public home page hero.
func Landing() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="container mx-auto py-24 text-center">`+
			`<h1 class="mx-auto max-w-3xl text-5xl font-bold tracking-tight">Find the right tutor for any subject</h1>`+
			`<p class="mx-auto mt-6 max-w-xl text-lg text-muted-foreground">SkillBridge connects students with verified tutors across Bangladesh. Book a session in minutes.</p>`+
			`<div class="mt-10 flex items-center justify-center gap-4">`+
			`<a href="/tutors" class="inline-flex h-11 items-center rounded-md bg-primary px-8 text-sm font-medium text-primary-foreground">Find Tutors</a>`+
			`<a href="/register" class="inline-flex h-11 items-center rounded-md border px-8 text-sm font-medium">Become a Tutor</a>`+
			`</div></section>`+
			`<section class="container mx-auto grid gap-8 py-16 md:grid-cols-3">`+
			feature("Verified tutors", "Every tutor goes through a manual verification before taking students.")+
			feature("Flexible scheduling", "Book sessions that fit your routine, online or in person.")+
			feature("Transparent pricing", "See hourly rates up front. No hidden fees.")+
			`</section>`)
		return err
	})
}

func feature(title, body string) string {
	return fmt.Sprintf(`<div class="rounded-lg border p-6"><h3 class="mb-2 text-lg font-semibold">%s</h3><p class="text-sm text-muted-foreground">%s</p></div>`,
		templ.EscapeString(title), templ.EscapeString(body))
}

func Tutors() templ.Component {
	return simplePage("Find Tutors", "Browse tutors by subject, level and location. Tutor search is coming to this area.")
}

func About() templ.Component {
	return simplePage("About SkillBridge", "SkillBridge is a tutoring marketplace connecting students with qualified tutors across Bangladesh.")
}

func Contact() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="container mx-auto py-16">`+
			`<h1 class="text-3xl font-bold">Contact us</h1>`+
			`<p class="mt-4 max-w-xl text-muted-foreground">Questions about tutoring, billing or anything else? Reach us at `+
			`<a href="mailto:support@skillbridge.example" class="text-primary">support@skillbridge.example</a> and we will get back within one business day.</p>`+
			`</section>`)
		return err
	})
}

// Placeholder is a titled stub for sections whose domain has not landed yet.
func Placeholder(title, body string) templ.Component {
	return simplePage(title, body)
}

func simplePage(title, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="container mx-auto py-16"><h1 class="text-3xl font-bold">%s</h1><p class="mt-4 max-w-xl text-muted-foreground">%s</p></section>`,
			templ.EscapeString(title), templ.EscapeString(body))
		return err
	})
}

// Dashboard renders the role dashboard shell with a greeting. Each role gets
// its own headline; the widgets below are placeholders until the booking
// domain lands.
func Dashboard(sess *models.Session, headline string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="container mx-auto py-16">`+
			`<h1 class="text-3xl font-bold">%s</h1>`+
			`<p class="mt-2 text-muted-foreground">Welcome back, %s.</p>`+
			`</section>`,
			templ.EscapeString(headline), templ.EscapeString(sess.Name))
		return err
	})
}

func Profile(sess *models.Session) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		verified := "Not verified"
		if sess.EmailVerified {
			verified = "Verified"
		}
		_, err := io.WriteString(w, `<section class="container mx-auto py-16">`+
			`<h1 class="text-3xl font-bold">Profile</h1>`+
			`<dl class="mt-8 max-w-md divide-y rounded-lg border">`+
			profileRow("Name", sess.Name)+
			profileRow("Email", sess.Email)+
			profileRow("Email status", verified)+
			profileRow("Role", string(sess.Role))+
			`</dl></section>`)
		return err
	})
}

func profileRow(label, value string) string {
	return fmt.Sprintf(`<div class="flex justify-between px-4 py-3"><dt class="text-sm text-muted-foreground">%s</dt><dd class="text-sm font-medium">%s</dd></div>`,
		templ.EscapeString(label), templ.EscapeString(value))
}

func NotFound() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="container mx-auto py-24 text-center">`+
			`<h1 class="text-6xl font-bold">404</h1>`+
			`<p class="mt-4 text-muted-foreground">The page you are looking for does not exist.</p>`+
			`<a href="/" class="mt-8 inline-flex h-10 items-center rounded-md bg-primary px-6 text-sm font-medium text-primary-foreground">Back to home</a>`+
			`</section>`)
		return err
	})
}

func ServerError() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="container mx-auto py-24 text-center">`+
			`<h1 class="text-4xl font-bold">Something went wrong</h1>`+
			`<p class="mt-4 text-muted-foreground">We hit an unexpected error. Please try again.</p>`+
			`<a href="/" class="mt-8 inline-flex h-10 items-center rounded-md bg-primary px-6 text-sm font-medium text-primary-foreground">Back to home</a>`+
			`</section>`)
		return err
	})
}
