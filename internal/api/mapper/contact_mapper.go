package mapper

import (
	"github.com/codeacademypro/contactapi/internal/api/dto/v1/contact"
	"github.com/codeacademypro/contactapi/internal/models"
)

// ContactRequestToSubmission converts a request DTO to a domain submission
func ContactRequestToSubmission(req *contact.ContactRequest, remoteIP string) *models.ContactSubmission {
	return &models.ContactSubmission{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Message:       req.Message,
		CaptchaToken:  req.CaptchaToken,
		TermsAccepted: req.TermsAccepted,
		RemoteIP:      remoteIP,
	}
}

// ContactToContactResponse converts a stored contact to its response DTO
func ContactToContactResponse(c *models.Contact) *contact.ContactResponse {
	if c == nil {
		return nil
	}

	return &contact.ContactResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Message:       c.Message,
		TermsAccepted: c.TermsAccepted,
		CreatedAt:     c.CreatedAt,
	}
}

// ContactsToContactListResponse converts stored contacts to the list DTO,
// keeping their order
func ContactsToContactListResponse(contacts []*models.Contact) *contact.ContactListResponse {
	result := make([]contact.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		result = append(result, *ContactToContactResponse(c))
	}
	return &contact.ContactListResponse{
		Contacts: result,
		Total:    len(result),
	}
}
