package database

import (
	"database/sql"
	"fmt"

	"github.com/JoeMarquez/phonebook/config"
)

// Stores owns the connections to the two independent stores: the phonebook
// itself and the audit trail. They may point at physically separate
// databases; nothing couples them.
type Stores struct {
	Phonebook *sql.DB
	AuditLog  *sql.DB
}

// InitializeStores opens both stores and runs their migrations
func InitializeStores(cfg *config.Config) (*Stores, error) {
	phonebook, err := OpenDB(cfg.Database.Phonebook)
	if err != nil {
		return nil, fmt.Errorf("failed to open phonebook store: %w", err)
	}

	auditLog, err := OpenDB(cfg.Database.AuditLog)
	if err != nil {
		phonebook.Close()
		return nil, fmt.Errorf("failed to open audit log store: %w", err)
	}

	stores := &Stores{Phonebook: phonebook, AuditLog: auditLog}

	if err := RunMigrations(phonebook, phonebookMigrations); err != nil {
		stores.Close()
		return nil, fmt.Errorf("failed to migrate phonebook store: %w", err)
	}

	if err := RunMigrations(auditLog, auditLogMigrations); err != nil {
		stores.Close()
		return nil, fmt.Errorf("failed to migrate audit log store: %w", err)
	}

	return stores, nil
}

// Close releases both store connections
func (s *Stores) Close() error {
	var firstErr error
	if s.Phonebook != nil {
		if err := s.Phonebook.Close(); err != nil {
			firstErr = err
		}
	}
	if s.AuditLog != nil {
		if err := s.AuditLog.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
