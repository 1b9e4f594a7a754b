package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/JoeMarquez/phonebook/models"
)

// AuditRepository handles audit trail persistence. Entries are append-only;
// nothing in this service ever updates or deletes them.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	GetAll(ctx context.Context) ([]models.AuditLogEntry, error)
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create appends a new audit log entry
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (timestamp, action, full_name, phone_number)
		VALUES (?, ?, ?, ?)
	`

	now := time.Now()
	result, err := r.db.ExecContext(
		ctx,
		query,
		now,
		entry.Action,
		entry.FullName,
		entry.PhoneNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	entry.ID = id
	entry.Timestamp = now
	return nil
}

// GetAll retrieves the full audit trail in append order
func (r *sqliteAuditRepository) GetAll(ctx context.Context) ([]models.AuditLogEntry, error) {
	query := `
		SELECT id, timestamp, action, full_name, phone_number
		FROM audit_log
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	entries := []models.AuditLogEntry{}
	for rows.Next() {
		var entry models.AuditLogEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.Action,
			&entry.FullName,
			&entry.PhoneNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}

	return entries, nil
}
