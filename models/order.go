package models

import "time"

const (
	OrderStatusNew       = "new"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusServed    = "served"
	OrderStatusPaid      = "paid"
)

// NextOrderStatus returns the single status reachable from s. There is no
// backward step and no skipping: callers advance one step at a time.
func NextOrderStatus(s string) (string, bool) {
	switch s {
	case OrderStatusNew:
		return OrderStatusPreparing, true
	case OrderStatusPreparing:
		return OrderStatusReady, true
	case OrderStatusReady:
		return OrderStatusServed, true
	case OrderStatusServed:
		return OrderStatusPaid, true
	}
	return "", false
}

type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	HotelID   uint        `gorm:"index;column:hotel_id" json:"hotel_id"`
	TableID   uint        `gorm:"index;column:table_id" json:"table_id"`
	Status    string      `gorm:"size:32;default:new" json:"status"`
	Total     float64     `gorm:"type:decimal(10,2)" json:"total"`
	Lines     []OrderLine `gorm:"foreignKey:OrderID" json:"lines"`
	Table     Table       `gorm:"foreignKey:TableID" json:"table,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderLine snapshots the menu item's name and price at the moment the line
// was added. Later catalog edits never change a placed line.
type OrderLine struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"index;column:order_id" json:"order_id"`
	MenuItemID uint    `gorm:"column:menu_item_id" json:"menu_item_id"`
	ItemName   string  `gorm:"size:255;column:item_name" json:"item_name"`
	UnitPrice  float64 `gorm:"type:decimal(10,2);column:unit_price" json:"unit_price"`
	Quantity   int     `json:"quantity"`
}
