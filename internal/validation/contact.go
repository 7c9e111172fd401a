package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/codeacademypro/contactapi/internal/models"

	"github.com/go-playground/validator/v10"
)

// Messages returned to the client, one per failing field.
const (
	MsgName    = "El nombre debe tener al menos 2 caracteres"
	MsgEmail   = "El correo electrónico no es válido"
	MsgPhone   = "El teléfono debe tener al menos 10 dígitos"
	MsgMessage = "El mensaje debe tener al menos 10 caracteres"
)

const (
	minNameLength    = 2
	minMessageLength = 10
)

// emailPart excludes every whitespace character, including vertical tab,
// Unicode separators (Z) and the BOM.
const emailPart = `[^\s\v\pZ\x{FEFF}@]+`

var (
	emailRegex = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)
	phoneRegex = regexp.MustCompile(`^[\d\s\-\+\(\)]{10,}$`)
)

// contactFields mirrors the submission fields in check order. The validator
// reports failures in struct field order, which fixes the order of messages.
type contactFields struct {
	Name    string `validate:"contact_name"`
	Email   string `validate:"contact_email"`
	Phone   string `validate:"contact_phone"`
	Message string `validate:"contact_message"`
}

var messages = map[string]string{
	"contact_name":    MsgName,
	"contact_email":   MsgEmail,
	"contact_phone":   MsgPhone,
	"contact_message": MsgMessage,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidators(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterValidators registers the contact field rules on v
func RegisterValidators(v *validator.Validate) error {
	rules := []struct {
		tag string
		fn  validator.Func
	}{
		{"contact_name", validateName},
		{"contact_email", validateEmail},
		{"contact_phone", validatePhone},
		{"contact_message", validateMessage},
	}
	for _, r := range rules {
		if err := v.RegisterValidation(r.tag, r.fn); err != nil {
			return fmt.Errorf("failed to register %s: %w", r.tag, err)
		}
	}
	return nil
}

func validateName(fl validator.FieldLevel) bool {
	return IsValidName(fl.Field().String())
}

func validateEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func validateMessage(fl validator.FieldLevel) bool {
	return IsValidMessage(fl.Field().String())
}

// IsValidName checks that the trimmed name has at least 2 characters
func IsValidName(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= minNameLength
}

// IsValidEmail checks the email against a local@domain.tld shape
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhone checks that the phone, with whitespace removed, has at least
// 10 characters drawn from digits, spaces, dashes, plus signs and parentheses
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(stripSpaces(phone))
}

// IsValidMessage checks that the trimmed message has at least 10 characters
func IsValidMessage(message string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(message)) >= minMessageLength
}

// ValidateContact returns one message per failing field, in the order name,
// email, phone, message. An empty result means the submission is valid.
func ValidateContact(sub *models.ContactSubmission) []string {
	fields := contactFields{
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   sub.Phone,
		Message: sub.Message,
	}

	err := validate.Struct(fields)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Only reachable on a programming error in contactFields.
		return []string{err.Error()}
	}

	result := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		result = append(result, messages[e.Tag()])
	}
	return result
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
