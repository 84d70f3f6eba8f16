package auth

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LoginPage is the /login form. Submission goes through HTMX so failures
// come back as banner fragments targeted at #login-response and the form
// keeps its state.
func LoginPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="container mx-auto flex min-h-[70vh] items-center justify-center py-12">`+
			`<div class="w-full max-w-md rounded-lg border bg-background p-8 shadow-sm">`+
			`<h1 class="mb-2 text-2xl font-bold">Welcome back</h1>`+
			`<p class="mb-6 text-sm text-muted-foreground">Log in to your SkillBridge account</p>`+
			`<div id="login-response"></div>`+
			`<form id="login-form" hx-post="/auth/login" hx-target="#login-response" hx-swap="innerHTML" hx-disabled-elt="find button[type='submit']" class="flex flex-col gap-4">`+
			`<div><label for="email" class="mb-1 block text-sm font-medium">Email</label>`+
			`<input id="email" name="email" type="email" required class="h-10 w-full rounded-md border px-3 text-sm" placeholder="you@example.com"></div>`+
			`<div><label for="password" class="mb-1 block text-sm font-medium">Password</label>`+
			`<input id="password" name="password" type="password" required class="h-10 w-full rounded-md border px-3 text-sm"></div>`+
			`<label class="flex items-center gap-2 text-sm"><input type="checkbox" name="remember_me" class="h-4 w-4 rounded border"> Remember me</label>`+
			`<button type="submit" class="h-10 rounded-md bg-primary text-sm font-medium text-primary-foreground">Log in</button>`+
			`</form>`+
			socialDivider()+
			googleButton()+
			`<p class="mt-6 text-center text-sm text-muted-foreground">Don't have an account? <a href="/register" class="font-medium text-primary">Sign up</a></p>`+
			`</div></section>`)
		return err
	})
}

// RegisterPage is the /register form. Phone is optional and only accepts
// Bangladeshi mobile numbers.
func RegisterPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="container mx-auto flex min-h-[70vh] items-center justify-center py-12">`+
			`<div class="w-full max-w-md rounded-lg border bg-background p-8 shadow-sm">`+
			`<h1 class="mb-2 text-2xl font-bold">Create your account</h1>`+
			`<p class="mb-6 text-sm text-muted-foreground">Join SkillBridge to find the right tutor</p>`+
			`<div id="register-response"></div>`+
			`<form id="register-form" hx-post="/auth/register" hx-target="#register-response" hx-swap="innerHTML" hx-disabled-elt="find button[type='submit']" class="flex flex-col gap-4">`+
			`<div><label for="name" class="mb-1 block text-sm font-medium">Full name</label>`+
			`<input id="name" name="name" type="text" required class="h-10 w-full rounded-md border px-3 text-sm" placeholder="Rahim Uddin"></div>`+
			`<div><label for="email" class="mb-1 block text-sm font-medium">Email</label>`+
			`<input id="email" name="email" type="email" required class="h-10 w-full rounded-md border px-3 text-sm" placeholder="you@example.com"></div>`+
			`<div><label for="phone" class="mb-1 block text-sm font-medium">Phone <span class="text-muted-foreground">(optional)</span></label>`+
			`<input id="phone" name="phone" type="tel" class="h-10 w-full rounded-md border px-3 text-sm" placeholder="01XXXXXXXXX"></div>`+
			`<div><label for="password" class="mb-1 block text-sm font-medium">Password</label>`+
			`<input id="password" name="password" type="password" required class="h-10 w-full rounded-md border px-3 text-sm">`+
			`<p class="mt-1 text-xs text-muted-foreground">At least 8 characters with an uppercase letter, a lowercase letter, a digit and a special character</p></div>`+
			`<button type="submit" class="h-10 rounded-md bg-primary text-sm font-medium text-primary-foreground">Sign up</button>`+
			`</form>`+
			socialDivider()+
			googleButton()+
			`<p class="mt-6 text-center text-sm text-muted-foreground">Already have an account? <a href="/login" class="font-medium text-primary">Log in</a></p>`+
			`</div></section>`)
		return err
	})
}

func socialDivider() string {
	return `<div class="my-6 flex items-center gap-3"><hr class="flex-1"><span class="text-xs text-muted-foreground">or</span><hr class="flex-1"></div>`
}

func googleButton() string {
	return `<a href="/auth/social/google" class="flex h-10 w-full items-center justify-center gap-2 rounded-md border text-sm font-medium">Continue with Google</a>`
}
