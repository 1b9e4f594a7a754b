package models

// Contact represents a single phonebook record
type Contact struct {
	ID          int    `json:"id" db:"id"`
	FullName    string `json:"full_name" db:"full_name"`
	PhoneNumber string `json:"phone_number" db:"phone_number"`
}

// PersonForm represents request data for adding a contact
type PersonForm struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}
