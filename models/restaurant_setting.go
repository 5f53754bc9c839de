package models

import (
	"time"

	"gorm.io/datatypes"
)

// RestaurantSetting holds per-hotel billing and display configuration.
// TaxRate is a fraction (0.10 means 10%).
type RestaurantSetting struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	HotelID       uint           `gorm:"uniqueIndex;column:hotel_id" json:"hotel_id"`
	Name          string         `gorm:"size:255" json:"name"`
	Address       string         `gorm:"type:text" json:"address"`
	Phone         string         `gorm:"size:50" json:"phone"`
	Email         string         `gorm:"size:150" json:"email"`
	TaxRate       float64        `gorm:"column:tax_rate" json:"tax_rate"`
	Currency      string         `gorm:"size:8" json:"currency"`
	InvoiceFooter string         `gorm:"size:255;column:invoice_footer" json:"invoice_footer"`
	Features      datatypes.JSON `json:"features,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

const DefaultTaxRate = 0.10
