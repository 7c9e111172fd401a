package repository

import (
	"context"

	"github.com/codeacademypro/contactapi/internal/models"
)

// ContactRepository defines the interface for contact-related database operations
type ContactRepository interface {
	// Create inserts a contact and fills in its ID and CreatedAt
	Create(ctx context.Context, contact *models.Contact) error
	// List returns every contact, newest first
	List(ctx context.Context) ([]*models.Contact, error)
	// GetByID returns a contact by ID or ErrNotFound
	GetByID(ctx context.Context, id int64) (*models.Contact, error)
	// Ping checks that the store is reachable
	Ping(ctx context.Context) error
}
