package models

import (
	"time"

	"gorm.io/gorm"
)

type Reservation struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	HotelID       uint           `gorm:"index;column:hotel_id" json:"hotel_id"`
	TableID       uint           `gorm:"index;column:table_id" json:"table_id"`
	CustomerName  string         `gorm:"size:255;column:customer_name" json:"customer_name"`
	CustomerPhone string         `gorm:"size:50;column:customer_phone" json:"customer_phone"`
	Date          time.Time      `json:"date"`
	PartySize     int            `gorm:"column:party_size" json:"party_size"`
	Notes         string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
