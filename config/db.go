package config

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-backend/identity"
	"restaurant-backend/models"
)

func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := SeedDatabase(db, cfg); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs schema migration in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&identity.Account{},
		&models.SubscriptionPackage{},
		&models.Hotel{},
		&models.UserRole{},
		&models.RestaurantSetting{},
		&models.MenuItem{},
		&models.Table{},
		&models.Order{},
		&models.OrderLine{},
		&models.SavedOrder{},
		&models.SavedOrderLine{},
		&models.Invoice{},
		&models.InvoiceLine{},
		&models.TokenCounter{},
		&models.Expense{},
		&models.Reservation{},
	)
}

// SeedDatabase ensures a superadmin account and the default subscription
// packages exist.
func SeedDatabase(db *gorm.DB, cfg *Config) error {
	if cfg.SuperadminPass != "" {
		var count int64
		db.Model(&models.UserRole{}).Where("role = ?", models.RoleSuperadmin).Count(&count)
		if count == 0 {
			provider := identity.NewService(db)
			account, err := provider.CreateUser(cfg.SuperadminEmail, cfg.SuperadminPass, "Superadmin")
			if err != nil {
				log.Printf("warning: failed to create superadmin account: %v", err)
			} else {
				role := models.UserRole{UserID: account.ID, Role: models.RoleSuperadmin}
				if err := db.Create(&role).Error; err != nil {
					log.Printf("warning: failed to assign superadmin role: %v", err)
				} else {
					log.Println("Superadmin seeded")
				}
			}
		}
	}

	var pkgCount int64
	db.Model(&models.SubscriptionPackage{}).Count(&pkgCount)
	if pkgCount == 0 {
		packages := []models.SubscriptionPackage{
			{Name: "Monthly", Price: 29.99, DurationDays: 30, Description: "Single restaurant, monthly billing"},
			{Name: "Yearly", Price: 299.99, DurationDays: 365, Description: "Single restaurant, yearly billing"},
		}
		if err := db.Create(&packages).Error; err != nil {
			log.Printf("warning: failed to seed subscription packages: %v", err)
		} else {
			log.Println("Subscription packages seeded")
		}
	}

	return nil
}
