package models

import (
	"time"

	"gorm.io/gorm"
)

type MenuItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	HotelID     uint           `gorm:"index;column:hotel_id" json:"hotel_id"`
	Name        string         `gorm:"size:255" json:"name"`
	Price       float64        `gorm:"type:decimal(10,2)" json:"price"`
	Category    string         `gorm:"size:100;index" json:"category"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Available   bool           `gorm:"default:true" json:"available"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
