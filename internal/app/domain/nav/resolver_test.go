package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillbridge/skillbridge-web/internal/app/models"
)

func TestDestinationFor(t *testing.T) {
	tests := []struct {
		name string
		sess *models.Session
		want string
	}{
		{"Student", &models.Session{Role: models.RoleStudent}, "/student/dashboard"},
		{"Tutor", &models.Session{Role: models.RoleTutor}, "/tutor/dashboard"},
		{"Admin", &models.Session{Role: models.RoleAdmin}, "/admin/dashboard"},
		{"UnknownRole", &models.Session{Role: models.RoleUnknown}, "/"},
		{"UnparsedRole", &models.Session{Role: models.ParseRole("SUPERUSER")}, "/"},
		{"AbsentSession", nil, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DestinationFor(tt.sess))
		})
	}
}

func TestMenuFor(t *testing.T) {
	t.Run("Student", func(t *testing.T) {
		menu := MenuFor(&models.Session{Role: models.RoleStudent})
		assert.Equal(t, []models.MenuEntry{
			{Label: "My Bookings", URL: "/student/bookings"},
			{Label: "Become a Tutor", URL: "/student/become-tutor"},
		}, menu)
	})

	t.Run("Tutor", func(t *testing.T) {
		menu := MenuFor(&models.Session{Role: models.RoleTutor})
		assert.Equal(t, []models.MenuEntry{
			{Label: "My Sessions", URL: "/tutor/sessions"},
			{Label: "Availability", URL: "/tutor/availability"},
		}, menu)
	})

	t.Run("AdminGetsNoExtraEntries", func(t *testing.T) {
		assert.Empty(t, MenuFor(&models.Session{Role: models.RoleAdmin}))
	})

	t.Run("Guest", func(t *testing.T) {
		assert.Empty(t, MenuFor(nil))
	})

	t.Run("OrderIsStableAcrossCalls", func(t *testing.T) {
		sess := &models.Session{Role: models.RoleStudent}
		assert.Equal(t, MenuFor(sess), MenuFor(sess))
	})
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"TwoNames", "Rahim Uddin", "RU"},
		{"SingleName", "Madonna", "M"},
		{"ThreeNamesCapsAtTwo", "Abu Bakar Siddique", "AB"},
		{"Lowercase", "jane doe", "JD"},
		{"ExtraWhitespace", "  Jane   Doe  ", "JD"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.in))
		})
	}
}
