package auth

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/skillbridge/skillbridge-web/internal/app/models"
)

// bdPhonePattern matches Bangladeshi mobile numbers: operator prefix 013-019
// followed by eight digits.
var bdPhonePattern = regexp.MustCompile(`^01[3-9]\d{8}$`)

const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration failures here are programmer errors, surface them at init.
	if err := v.RegisterValidation("bd_phone", func(fl validator.FieldLevel) bool {
		return bdPhonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return len(passwordViolations(fl.Field().String())) == 0
	}); err != nil {
		panic(err)
	}

	return v
}

// passwordViolations returns one message per unmet password rule.
func passwordViolations(password string) []string {
	var violations []string
	if len(password) < 8 {
		violations = append(violations, "Password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		violations = append(violations, "Password must contain an uppercase letter")
	}
	if !hasLower {
		violations = append(violations, "Password must contain a lowercase letter")
	}
	if !hasDigit {
		violations = append(violations, "Password must contain a digit")
	}
	if !hasSymbol {
		violations = append(violations, "Password must contain a special character")
	}
	return violations
}

// Validate checks a Credentials or Profile value and returns one FieldError
// per violated rule. An empty result means the submission may go to the
// network.
func Validate(payload any) []*models.FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return []*models.FieldError{{Field: "", Message: "Invalid submission"}}
	}

	var fieldErrs []*models.FieldError
	for _, fe := range invalid {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fieldErrs = append(fieldErrs, &models.FieldError{Field: field, Message: fieldLabel(field) + " is required"})
		case "email":
			fieldErrs = append(fieldErrs, &models.FieldError{Field: field, Message: "Please enter a valid email address"})
		case "bd_phone":
			fieldErrs = append(fieldErrs, &models.FieldError{Field: field, Message: "Please enter a valid Bangladeshi mobile number"})
		case "strong_password":
			for _, msg := range passwordViolations(fe.Value().(string)) {
				fieldErrs = append(fieldErrs, &models.FieldError{Field: field, Message: msg})
			}
		default:
			fieldErrs = append(fieldErrs, &models.FieldError{Field: field, Message: fieldLabel(field) + " is invalid"})
		}
	}
	return fieldErrs
}

func fieldLabel(field string) string {
	switch field {
	case "email":
		return "Email"
	case "password":
		return "Password"
	case "name":
		return "Name"
	case "phone":
		return "Phone"
	default:
		return field
	}
}
