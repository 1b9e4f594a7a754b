package services

import (
	"context"
	"fmt"

	"github.com/JoeMarquez/phonebook/models"
	"github.com/JoeMarquez/phonebook/repositories"
)

// PhoneBookService interface defines the phonebook operations. Every
// operation, reads included, appends one entry to the audit trail on
// success. The audit write is not atomic with the phonebook mutation: a
// failure between the two leaves the mutation in place and surfaces the
// audit error to the caller.
type PhoneBookService interface {
	List(ctx context.Context) ([]models.Contact, error)
	Add(ctx context.Context, form *models.PersonForm) error
	DeleteByName(ctx context.Context, fullName string) error
	DeleteByNumber(ctx context.Context, phoneNumber string) error
}

// phoneBookService implements PhoneBookService interface
type phoneBookService struct {
	contactRepo repositories.ContactRepository
	auditRepo   repositories.AuditRepository
}

// NewPhoneBookService creates a new phonebook service
func NewPhoneBookService(contactRepo repositories.ContactRepository, auditRepo repositories.AuditRepository) PhoneBookService {
	return &phoneBookService{
		contactRepo: contactRepo,
		auditRepo:   auditRepo,
	}
}

// List retrieves all contacts. Read-only access is audited too.
func (s *phoneBookService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	if err := s.appendAudit(ctx, models.AuditActionList, "", ""); err != nil {
		return nil, err
	}

	return contacts, nil
}

// Add validates the form, rejects duplicates, and inserts a new contact.
// The duplicate checks run number first, then name.
func (s *phoneBookService) Add(ctx context.Context, form *models.PersonForm) error {
	if !models.ValidateFullName(form.FullName) {
		return ErrInvalidInput
	}
	if !models.ValidatePhoneNumber(form.PhoneNumber) {
		return ErrInvalidInput
	}

	existingNumber, err := s.contactRepo.GetByNumber(ctx, form.PhoneNumber)
	if err != nil {
		return fmt.Errorf("failed to check phone number: %w", err)
	}
	if existingNumber != nil {
		return ErrPhoneNumberExists
	}

	existingPerson, err := s.contactRepo.GetByName(ctx, form.FullName)
	if err != nil {
		return fmt.Errorf("failed to check full name: %w", err)
	}
	if existingPerson != nil {
		return ErrPersonExists
	}

	contact := &models.Contact{
		FullName:    form.FullName,
		PhoneNumber: form.PhoneNumber,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return fmt.Errorf("failed to add contact: %w", err)
	}

	return s.appendAudit(ctx, models.AuditActionAdd, contact.FullName, contact.PhoneNumber)
}

// DeleteByName validates the name, deletes the matching contact, and logs
// the deleted record's stored phone number.
func (s *phoneBookService) DeleteByName(ctx context.Context, fullName string) error {
	if !models.ValidateFullName(fullName) {
		return ErrInvalidInput
	}

	contact, err := s.contactRepo.GetByName(ctx, fullName)
	if err != nil {
		return fmt.Errorf("failed to look up contact: %w", err)
	}
	if contact == nil {
		return ErrPersonNotFound
	}

	if err := s.contactRepo.Delete(ctx, contact.ID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	return s.appendAudit(ctx, models.AuditActionDeleteByName, contact.FullName, contact.PhoneNumber)
}

// DeleteByNumber validates the number, deletes the matching contact, and
// logs the deleted record's stored full name.
func (s *phoneBookService) DeleteByNumber(ctx context.Context, phoneNumber string) error {
	if !models.ValidatePhoneNumber(phoneNumber) {
		return ErrInvalidInput
	}

	contact, err := s.contactRepo.GetByNumber(ctx, phoneNumber)
	if err != nil {
		return fmt.Errorf("failed to look up contact: %w", err)
	}
	if contact == nil {
		return ErrPersonNotFound
	}

	if err := s.contactRepo.Delete(ctx, contact.ID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	return s.appendAudit(ctx, models.AuditActionDeleteByNumber, contact.FullName, contact.PhoneNumber)
}

// appendAudit writes one audit entry for a completed operation
func (s *phoneBookService) appendAudit(ctx context.Context, action, fullName, phoneNumber string) error {
	entry := &models.AuditLogEntry{
		Action:      action,
		FullName:    fullName,
		PhoneNumber: phoneNumber,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}
