package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter configures all routes
func NewRouter(ctrl *Controllers) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "phonebook"}`)
	})

	r.Route("/PhoneBook", func(r chi.Router) {
		r.Get("/list", ctrl.PhoneBook.List)
		r.Post("/add", ctrl.PhoneBook.Add)
		r.Put("/deleteByName", ctrl.PhoneBook.DeleteByName)
		r.Put("/deleteByNumber", ctrl.PhoneBook.DeleteByNumber)
	})

	return r
}
