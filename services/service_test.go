package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-backend/config"
	"restaurant-backend/models"
)

// openTestDB gives each test its own named in-memory sqlite database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func seedHotel(t *testing.T, db *gorm.DB, taxRate float64) models.Hotel {
	t.Helper()

	hotel := models.Hotel{Name: "La Bella Italia", Status: models.HotelStatusActive}
	require.NoError(t, db.Create(&hotel).Error)

	setting := models.RestaurantSetting{
		HotelID:  hotel.ID,
		Name:     hotel.Name,
		TaxRate:  taxRate,
		Currency: "USD",
	}
	require.NoError(t, db.Create(&setting).Error)
	return hotel
}

func seedMenuItem(t *testing.T, db *gorm.DB, hotelID uint, name string, price float64) models.MenuItem {
	t.Helper()

	item := models.MenuItem{HotelID: hotelID, Name: name, Price: price, Category: "Mains", Available: true}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedTable(t *testing.T, db *gorm.DB, hotelID uint, number int) models.Table {
	t.Helper()

	table := models.Table{HotelID: hotelID, Number: number, Capacity: 4, Status: models.TableStatusFree}
	require.NoError(t, db.Create(&table).Error)
	return table
}
