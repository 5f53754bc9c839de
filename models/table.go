package models

import "time"

const (
	TableStatusFree     = "free"
	TableStatusOccupied = "occupied"
	TableStatusReserved = "reserved"
)

type Table struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HotelID   uint      `gorm:"uniqueIndex:idx_hotel_table_number;column:hotel_id" json:"hotel_id"`
	Number    int       `gorm:"uniqueIndex:idx_hotel_table_number" json:"number"`
	Capacity  int       `json:"capacity"`
	Status    string    `gorm:"size:32;default:free" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidTableStatus(s string) bool {
	switch s {
	case TableStatusFree, TableStatusOccupied, TableStatusReserved:
		return true
	}
	return false
}
