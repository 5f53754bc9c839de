package models

import "time"

// SavedOrder is a parked bill addressable by a short human-enterable POS
// number. It is consumed exactly once by invoice generation.
type SavedOrder struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	HotelID     uint             `gorm:"uniqueIndex:idx_hotel_pos_number;column:hotel_id" json:"hotel_id"`
	PosNumber   string           `gorm:"size:32;uniqueIndex:idx_hotel_pos_number;column:pos_number" json:"pos_number"`
	TableNumber int              `gorm:"column:table_number" json:"table_number"`
	Subtotal    float64          `gorm:"type:decimal(10,2)" json:"subtotal"`
	Tax         float64          `gorm:"type:decimal(10,2)" json:"tax"`
	Total       float64          `gorm:"type:decimal(10,2)" json:"total"`
	IsPaid      bool             `gorm:"default:false;column:is_paid" json:"is_paid"`
	Lines       []SavedOrderLine `gorm:"foreignKey:SavedOrderID" json:"lines"`
	CreatedAt   time.Time        `json:"created_at"`
}

type SavedOrderLine struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	SavedOrderID uint    `gorm:"index;column:saved_order_id" json:"saved_order_id"`
	MenuItemID   uint    `gorm:"column:menu_item_id" json:"menu_item_id"`
	ItemName     string  `gorm:"size:255;column:item_name" json:"item_name"`
	UnitPrice    float64 `gorm:"type:decimal(10,2);column:unit_price" json:"unit_price"`
	Quantity     int     `json:"quantity"`
}
