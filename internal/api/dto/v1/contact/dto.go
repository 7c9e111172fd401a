package contact

import "time"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name          string `json:"nombre"`
	Email         string `json:"correo"`
	Phone         string `json:"telefono"`
	Message       string `json:"mensaje"`
	CaptchaToken  string `json:"captcha_token"`
	TermsAccepted *bool  `json:"acepta_terminos"`
}

// ContactCreatedResponse is returned after a contact was stored
type ContactCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ContactResponse is a stored contact
type ContactResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"nombre"`
	Email         string    `json:"correo"`
	Phone         string    `json:"telefono"`
	Message       string    `json:"mensaje"`
	TermsAccepted bool      `json:"acepta_terminos"`
	CreatedAt     time.Time `json:"fecha_creacion"`
}

// ContactListResponse lists stored contacts, newest first
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contactos"`
	Total    int               `json:"total"`
}
