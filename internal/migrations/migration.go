package migrations

import (
	"errors"
	"log"

	"hardware_store/internal/models"
	"hardware_store/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations creates the schema and seeds default data.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Brand{},
		&models.Warehouse{},
		&models.Product{},
		&models.ProductImage{},
		&models.TechnicalSpecification{},
		&models.WarehouseStock{},
		&models.ProductReview{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusUpdate{},
		&models.JobSite{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	userRepo := repository.NewUserRepository(db)

	existing, err := userRepo.GetByUsername("admin")
	if err == nil && existing != nil {
		log.Println("Admin user already exists")
		return nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	log.Println("Creating admin user...")
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.User{
		Username:     "admin",
		Email:        "admin@hardware-ecommerce.com",
		PasswordHash: string(hash),
		Role:         string(models.RoleAdmin),
		IsActive:     true,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created (username: admin)")
	}

	return createSampleCatalog(db)
}

func createSampleCatalog(db *gorm.DB) error {
	log.Println("Creating sample catalog...")

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Catalog already populated")
		return nil
	}

	tools := models.Category{Name: "Power Tools", Slug: "power-tools", IsActive: true}
	plumbing := models.Category{Name: "Plumbing", Slug: "plumbing", IsActive: true}
	if err := db.Create(&tools).Error; err != nil {
		return err
	}
	if err := db.Create(&plumbing).Error; err != nil {
		return err
	}

	bosch := models.Brand{Name: "Bosch", Slug: "bosch", IsActive: true}
	makita := models.Brand{Name: "Makita", Slug: "makita", IsActive: true}
	if err := db.Create(&bosch).Error; err != nil {
		return err
	}
	if err := db.Create(&makita).Error; err != nil {
		return err
	}

	tema := models.Warehouse{Name: "Tema Warehouse", Code: "TEMA", Address: "Industrial Area, Tema", Phone: "+233302000000", IsActive: true}
	if err := db.Create(&tema).Error; err != nil {
		return err
	}

	comparePrice := decimal.NewFromFloat(550.00)
	products := []models.Product{
		{
			Name:              "Cordless Drill 18V",
			Slug:              "cordless-drill-18v",
			Description:       "18V cordless drill with two batteries and charger.",
			ShortDescription:  "18V cordless drill",
			SKU:               "DRL-18V-001",
			CategoryID:        tools.ID,
			BrandID:           bosch.ID,
			Price:             decimal.NewFromFloat(450.00),
			ComparePrice:      &comparePrice,
			Condition:         string(models.ConditionNew),
			TrackStock:        true,
			StockQuantity:     25,
			LowStockThreshold: 5,
			IsActive:          true,
			IsFeatured:        true,
			Specifications: []models.TechnicalSpecification{
				{Label: "Voltage", Value: "18V", SpecType: "voltage", SortOrder: 1},
				{Label: "Weight", Value: "1.8kg", SpecType: "weight", SortOrder: 2},
			},
			WarehouseStock: []models.WarehouseStock{
				{WarehouseID: tema.ID, Quantity: 25},
			},
		},
		{
			Name:             "Angle Grinder 230mm",
			Slug:             "angle-grinder-230mm",
			Description:      "Heavy duty 230mm angle grinder.",
			ShortDescription: "230mm angle grinder",
			SKU:              "GRD-230-001",
			CategoryID:       tools.ID,
			BrandID:          makita.ID,
			Price:            decimal.NewFromFloat(620.00),
			Condition:        string(models.ConditionNew),
			TrackStock:       true,
			StockQuantity:    3,
			IsActive:         true,
		},
		{
			Name:             "PVC Pipe 4 inch",
			Slug:             "pvc-pipe-4-inch",
			Description:      "4 inch PVC pressure pipe, 6m length.",
			ShortDescription: "4in PVC pipe",
			SKU:              "PVC-4IN-001",
			CategoryID:       plumbing.ID,
			BrandID:          bosch.ID,
			Price:            decimal.NewFromFloat(85.00),
			Condition:        string(models.ConditionNew),
			TrackStock:       false,
			IsActive:         true,
		},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}

	log.Println("Sample catalog created successfully!")
	return nil
}
