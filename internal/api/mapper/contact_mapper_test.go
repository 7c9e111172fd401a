package mapper

import (
	"testing"
	"time"

	"github.com/codeacademypro/contactapi/internal/api/dto/v1/contact"
	"github.com/codeacademypro/contactapi/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestContactRequestToSubmission(t *testing.T) {
	accepted := true
	req := &contact.ContactRequest{
		Name:          "Ana",
		Email:         "ana@example.com",
		Phone:         "5512345678",
		Message:       "Hola, quiero información",
		CaptchaToken:  "tok",
		TermsAccepted: &accepted,
	}

	sub := ContactRequestToSubmission(req, "198.51.100.1")

	assert.Equal(t, "Ana", sub.Name)
	assert.Equal(t, "tok", sub.CaptchaToken)
	assert.Equal(t, "198.51.100.1", sub.RemoteIP)
	assert.True(t, sub.AcceptedTerms())
}

func TestContactsToContactListResponse(t *testing.T) {
	now := time.Now().UTC()
	list := ContactsToContactListResponse([]*models.Contact{
		{ID: 2, Name: "Beto", CreatedAt: now},
		{ID: 1, Name: "Ana", CreatedAt: now.Add(-time.Minute)},
	})

	assert.Equal(t, 2, list.Total)
	assert.Equal(t, int64(2), list.Contacts[0].ID)
	assert.Equal(t, int64(1), list.Contacts[1].ID)

	empty := ContactsToContactListResponse(nil)
	assert.NotNil(t, empty.Contacts)
	assert.Zero(t, empty.Total)
	assert.Nil(t, ContactToContactResponse(nil))
}
