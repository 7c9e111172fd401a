package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/codeacademypro/contactapi/internal/models"
)

const contactColumns = `id, nombre, correo, telefono, mensaje, acepta_terminos, fecha_creacion`

// contactRepository implements ContactRepository on PostgreSQL
type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new ContactRepository instance
func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create inserts a contact. CreatedAt is taken from the caller when set so the
// server clock assigns the timestamp; the row's values are read back.
func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO contactos (nombre, correo, telefono, mensaje, acepta_terminos, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, NOW()))
		RETURNING id, fecha_creacion`,
		contact.Name, contact.Email, contact.Phone, contact.Message, contact.TermsAccepted, nullTime(contact),
	).Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	contact.CreatedAt = contact.CreatedAt.UTC()
	return nil
}

// List returns every contact ordered by creation time, newest first
func (r *contactRepository) List(ctx context.Context) ([]*models.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+contactColumns+` FROM contactos ORDER BY fecha_creacion DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*models.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// GetByID returns a contact by ID
func (r *contactRepository) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contactos WHERE id = $1`, id)

	c, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact %d: %w", id, err)
	}
	return c, nil
}

// Ping checks the database connection
func (r *contactRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(s scanner) (*models.Contact, error) {
	var c models.Contact
	if err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.TermsAccepted, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}

func nullTime(c *models.Contact) sql.NullTime {
	return sql.NullTime{Time: c.CreatedAt, Valid: !c.CreatedAt.IsZero()}
}
