package repositories

import (
	"github.com/JoeMarquez/phonebook/database"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Contact ContactRepository
	Audit   AuditRepository
}

// NewRepositories creates and initializes all repositories. The contact and
// audit repositories deliberately get separate store handles.
func NewRepositories(stores *database.Stores) *Repositories {
	return &Repositories{
		Contact: NewContactRepository(stores.Phonebook),
		Audit:   NewAuditRepository(stores.AuditLog),
	}
}
