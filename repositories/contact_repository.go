package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JoeMarquez/phonebook/models"
)

// ContactRepository interface defines phonebook database operations
type ContactRepository interface {
	GetAll(ctx context.Context) ([]models.Contact, error)
	GetByName(ctx context.Context, fullName string) (*models.Contact, error)
	GetByNumber(ctx context.Context, phoneNumber string) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id int) error
}

// contactRepository implements ContactRepository interface
type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{db: db}
}

// GetAll retrieves all phonebook records
func (r *contactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	query := `
		SELECT id, full_name, phone_number
		FROM phonebook
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var contact models.Contact
		if err := rows.Scan(&contact.ID, &contact.FullName, &contact.PhoneNumber); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}

	return contacts, nil
}

// GetByName retrieves a contact by exact full name. Returns (nil, nil) when
// no record matches.
func (r *contactRepository) GetByName(ctx context.Context, fullName string) (*models.Contact, error) {
	query := `
		SELECT id, full_name, phone_number
		FROM phonebook
		WHERE full_name = ?
	`

	var contact models.Contact
	err := r.db.QueryRowContext(ctx, query, fullName).Scan(
		&contact.ID,
		&contact.FullName,
		&contact.PhoneNumber,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact by name: %w", err)
	}

	return &contact, nil
}

// GetByNumber retrieves a contact by exact phone number. Returns (nil, nil)
// when no record matches.
func (r *contactRepository) GetByNumber(ctx context.Context, phoneNumber string) (*models.Contact, error) {
	query := `
		SELECT id, full_name, phone_number
		FROM phonebook
		WHERE phone_number = ?
	`

	var contact models.Contact
	err := r.db.QueryRowContext(ctx, query, phoneNumber).Scan(
		&contact.ID,
		&contact.FullName,
		&contact.PhoneNumber,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact by number: %w", err)
	}

	return &contact, nil
}

// Create inserts a new phonebook record
func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO phonebook (full_name, phone_number)
		VALUES (?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, contact.FullName, contact.PhoneNumber)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	contact.ID = int(id)
	return nil
}

// Delete deletes a phonebook record by ID
func (r *contactRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM phonebook WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("contact with ID %d not found", id)
	}

	return nil
}
