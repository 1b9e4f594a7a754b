package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/JoeMarquez/phonebook/models"
	"github.com/JoeMarquez/phonebook/services"
)

// PhoneBookController handles the /PhoneBook endpoints
type PhoneBookController struct {
	services *services.Services
}

// NewPhoneBookController creates a new phonebook controller
func NewPhoneBookController(services *services.Services) *PhoneBookController {
	return &PhoneBookController{
		services: services,
	}
}

// List handles GET /PhoneBook/list
func (c *PhoneBookController) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.services.PhoneBook.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, contacts)
}

// Add handles POST /PhoneBook/add
func (c *PhoneBookController) Add(w http.ResponseWriter, r *http.Request) {
	var form models.PersonForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, services.ErrInvalidInput.Error())
		return
	}

	if err := c.services.PhoneBook.Add(r.Context(), &form); err != nil {
		respondServiceError(w, err)
		return
	}

	respondMessage(w, "Person added successfully")
}

// DeleteByName handles PUT /PhoneBook/deleteByName
func (c *PhoneBookController) DeleteByName(w http.ResponseWriter, r *http.Request) {
	fullName := r.URL.Query().Get("full_name")

	if err := c.services.PhoneBook.DeleteByName(r.Context(), fullName); err != nil {
		respondServiceError(w, err)
		return
	}

	respondMessage(w, "Person deleted successfully")
}

// DeleteByNumber handles PUT /PhoneBook/deleteByNumber
func (c *PhoneBookController) DeleteByNumber(w http.ResponseWriter, r *http.Request) {
	phoneNumber := r.URL.Query().Get("phone_number")

	if err := c.services.PhoneBook.DeleteByNumber(r.Context(), phoneNumber); err != nil {
		respondServiceError(w, err)
		return
	}

	respondMessage(w, "Person deleted successfully")
}

// respondServiceError maps service errors to HTTP status codes
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrPhoneNumberExists),
		errors.Is(err, services.ErrPersonExists):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPersonNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("phonebook request failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
