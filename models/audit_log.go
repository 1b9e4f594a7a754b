package models

import "time"

// Audit action tags, one per API operation.
const (
	AuditActionList           = "list"
	AuditActionAdd            = "add"
	AuditActionDeleteByName   = "delete-by-name"
	AuditActionDeleteByNumber = "delete-by-number"
)

// AuditLogEntry represents a single API operation event. Entries are
// append-only; name and number stay empty for read-only actions.
type AuditLogEntry struct {
	ID          int64     `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Action      string    `json:"action"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
}
