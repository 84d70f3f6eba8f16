package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		errs := Validate(Credentials{Email: "user@example.com", Password: "whatever"})
		assert.Empty(t, errs)
	})

	t.Run("MalformedEmail", func(t *testing.T) {
		errs := Validate(Credentials{Email: "not-an-email", Password: "whatever"})
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
	})

	t.Run("MissingPassword", func(t *testing.T) {
		errs := Validate(Credentials{Email: "user@example.com"})
		require.Len(t, errs, 1)
		assert.Equal(t, "password", errs[0].Field)
	})

	t.Run("BothMissing", func(t *testing.T) {
		errs := Validate(Credentials{})
		assert.Len(t, errs, 2)
	})
}

func TestValidateProfile(t *testing.T) {
	valid := Profile{
		Name:     "Rahim Uddin",
		Email:    "rahim@example.com",
		Phone:    "01812345678",
		Password: "Str0ng!Pass",
	}

	t.Run("Valid", func(t *testing.T) {
		assert.Empty(t, Validate(valid))
	})

	t.Run("EmptyPhoneIsAllowed", func(t *testing.T) {
		p := valid
		p.Phone = ""
		assert.Empty(t, Validate(p))
	})

	t.Run("ForeignPhoneIsRejected", func(t *testing.T) {
		p := valid
		p.Phone = "12345"
		errs := Validate(p)
		require.Len(t, errs, 1)
		assert.Equal(t, "phone", errs[0].Field)
	})

	t.Run("WrongOperatorPrefixIsRejected", func(t *testing.T) {
		p := valid
		p.Phone = "01212345678"
		assert.Len(t, Validate(p), 1)
	})

	t.Run("MissingName", func(t *testing.T) {
		p := valid
		p.Name = ""
		errs := Validate(p)
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
	})
}

func TestValidateProfilePassword(t *testing.T) {
	base := Profile{Name: "Rahim Uddin", Email: "rahim@example.com"}

	withPassword := func(pw string) Profile {
		p := base
		p.Password = pw
		return p
	}

	t.Run("TooShort", func(t *testing.T) {
		errs := Validate(withPassword("S1!a"))
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "at least 8 characters")
	})

	t.Run("NoUppercase", func(t *testing.T) {
		errs := Validate(withPassword("weakpass1!"))
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "uppercase")
	})

	t.Run("NoDigit", func(t *testing.T) {
		errs := Validate(withPassword("Weakpass!"))
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "digit")
	})

	t.Run("NoSymbol", func(t *testing.T) {
		errs := Validate(withPassword("Weakpass1"))
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "special character")
	})

	t.Run("OneMessagePerViolatedRule", func(t *testing.T) {
		// Short, no upper, no digit, no symbol: four distinct messages.
		errs := Validate(withPassword("weak"))
		assert.Len(t, errs, 4)
		for _, fieldErr := range errs {
			assert.Equal(t, "password", fieldErr.Field)
		}
	})
}
