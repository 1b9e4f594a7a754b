package services

import (
	"github.com/JoeMarquez/phonebook/repositories"
)

// Services holds all service instances
type Services struct {
	PhoneBook PhoneBookService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		PhoneBook: NewPhoneBookService(repos.Contact, repos.Audit),
	}
}
