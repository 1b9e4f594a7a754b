package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/JoeMarquez/phonebook/services"
)

// respondJSON writes v as a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// respondError writes an error response as {"detail": "..."}
func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

// respondMessage writes a success acknowledgment as {"message": "..."}
func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// Controllers holds all controller instances
type Controllers struct {
	PhoneBook *PhoneBookController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		PhoneBook: NewPhoneBookController(services),
	}
}
