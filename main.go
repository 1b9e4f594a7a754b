package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/JoeMarquez/phonebook/config"
	"github.com/JoeMarquez/phonebook/controllers"
	"github.com/JoeMarquez/phonebook/database"
	"github.com/JoeMarquez/phonebook/repositories"
	"github.com/JoeMarquez/phonebook/services"
)

func main() {
	// Load environment variables from .env file when one is present
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Fatalf("Failed to load the env vars: %v", err)
		}
	}

	// Load configuration (database.pb and database.log)
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the phonebook and audit log stores
	stores, err := database.InitializeStores(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize stores: %v", err)
	}
	defer stores.Close()

	// Initialize repositories
	repos := repositories.NewRepositories(stores)

	// Initialize services
	srvs := services.NewServices(repos)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	// Set up router
	r := controllers.NewRouter(ctrl)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 PhoneBook service starting on port %s\n", port)
	fmt.Printf("🗃️  Phonebook store: %s\n", cfg.Database.Phonebook)
	fmt.Printf("🗃️  Audit log store: %s\n", cfg.Database.AuditLog)

	log.Fatal(http.ListenAndServe(":"+port, r))
}
