package models

import (
	"time"

	"github.com/a-h/templ"
)

// Role is the closed set of roles the auth service may report. Anything the
// service sends that we do not recognize parses to RoleUnknown, which never
// grants elevated access.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTutor   Role = "TUTOR"
	RoleAdmin   Role = "ADMIN"
	RoleUnknown Role = ""
)

// ParseRole maps the auth service's role string onto the closed Role set.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleStudent, RoleTutor, RoleAdmin:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// Session is this app's view of the authenticated identity, as reported by
// the remote auth service. It lives for a single request; the auth service's
// cookie is the only durable state.
type Session struct {
	UserID        string
	Name          string
	Email         string
	EmailVerified bool
	Role          Role
	Image         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MenuEntry is a single navigable link with a visibility rule already applied.
type MenuEntry struct {
	Label string
	URL   string
}

type NavItem struct {
	Name string
	URL  string
}

type Navigation struct {
	Items []NavItem
}

type LayoutTempl struct {
	Title      string
	Session    *Session
	Nav        Navigation
	ActivePath string
	Content    templ.Component
}

// PublicNav is the static public menu; active highlighting is exact path
// match against ActivePath. Order is fixed.
var PublicNav = Navigation{
	Items: []NavItem{
		{Name: "Home", URL: "/"},
		{Name: "Find Tutors", URL: "/tutors"},
		{Name: "About", URL: "/about"},
		{Name: "Contact", URL: "/contact"},
	},
}
