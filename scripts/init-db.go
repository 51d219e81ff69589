package main

import (
	"fmt"
	"log"

	"hardware_store/internal/config"
	"hardware_store/internal/database"
	"hardware_store/internal/migrations"
	"hardware_store/internal/models"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.OrderStatusUpdate{},
		&models.OrderItem{},
		&models.Order{},
		&models.ProductReview{},
		&models.WarehouseStock{},
		&models.TechnicalSpecification{},
		&models.ProductImage{},
		&models.Product{},
		&models.Warehouse{},
		&models.Brand{},
		&models.Category{},
		&models.JobSite{},
		&models.User{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Recreate tables and seed defaults
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Println("Database initialized successfully!")
}
