package service

import (
	"fmt"
	"strings"

	"github.com/codeacademypro/contactapi/internal/repository"
)

// ErrNotFound is returned when a contact does not exist.
var ErrNotFound = repository.ErrNotFound

// Client-facing policy messages
const (
	MsgTermsNotAccepted = "Debes aceptar los términos y condiciones"
	MsgCaptchaMissing   = "El token de CAPTCHA es requerido"
	MsgCaptchaInvalid   = "La verificación de CAPTCHA falló"
)

// PolicyError rejects a submission before validation: terms not accepted or
// a missing or failed CAPTCHA.
type PolicyError struct {
	Message string
}

func (e *PolicyError) Error() string {
	return e.Message
}

// ValidationError carries every failing field rule of a submission.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// PersistenceError wraps a store failure other than a lookup miss.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
