package nav

import (
	"strings"
	"unicode"

	"github.com/skillbridge/skillbridge-web/internal/app/models"
)

// Dashboard destinations per role. This is the only place the role-to-route
// mapping lives; every call site goes through DestinationFor.
const (
	StudentDashboardPath = "/student/dashboard"
	TutorDashboardPath   = "/tutor/dashboard"
	AdminDashboardPath   = "/admin/dashboard"
	RootPath             = "/"
)

// DestinationFor returns the dashboard path for the session's role. Absent
// sessions and unrecognized roles land on the root path. Pure and total.
func DestinationFor(sess *models.Session) string {
	if sess == nil {
		return RootPath
	}
	switch sess.Role {
	case models.RoleStudent:
		return StudentDashboardPath
	case models.RoleTutor:
		return TutorDashboardPath
	case models.RoleAdmin:
		return AdminDashboardPath
	default:
		return RootPath
	}
}

var studentMenu = []models.MenuEntry{
	{Label: "My Bookings", URL: "/student/bookings"},
	{Label: "Become a Tutor", URL: "/student/become-tutor"},
}

var tutorMenu = []models.MenuEntry{
	{Label: "My Sessions", URL: "/tutor/sessions"},
	{Label: "Availability", URL: "/tutor/availability"},
}

// MenuFor returns the role-gated menu entries for the session, in a fixed
// order so re-renders never reorder them. Admins get no extra entries at
// this layer.
func MenuFor(sess *models.Session) []models.MenuEntry {
	if sess == nil {
		return nil
	}
	switch sess.Role {
	case models.RoleStudent:
		return studentMenu
	case models.RoleTutor:
		return tutorMenu
	default:
		return nil
	}
}

// Initials derives the avatar fallback from a display name: first rune of
// each whitespace-separated token, uppercased, at most two characters.
func Initials(name string) string {
	var initials []rune
	for _, token := range strings.Fields(name) {
		initials = append(initials, unicode.ToUpper([]rune(token)[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}
