package models

import "time"

// ContactSubmission is the raw contact form payload of a single request.
type ContactSubmission struct {
	Name         string
	Email        string
	Phone        string
	Message      string
	CaptchaToken string
	// TermsAccepted is nil when the client did not send the flag at all.
	TermsAccepted *bool
	// RemoteIP is forwarded to the CAPTCHA provider when known.
	RemoteIP string
}

// AcceptedTerms reports whether the terms flag is present and true.
func (s *ContactSubmission) AcceptedTerms() bool {
	return s.TermsAccepted != nil && *s.TermsAccepted
}

// Contact is a persisted contact form submission. Records are never updated.
type Contact struct {
	ID            int64     `json:"id"`
	Name          string    `json:"nombre"`
	Email         string    `json:"correo"`
	Phone         string    `json:"telefono"`
	Message       string    `json:"mensaje"`
	TermsAccepted bool      `json:"acepta_terminos"`
	CreatedAt     time.Time `json:"fecha_creacion"`
}
