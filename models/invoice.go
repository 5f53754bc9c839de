package models

import "time"

const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
	PaymentMethodUPI  = "upi"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI:
		return true
	}
	return false
}

// Invoice is a permanent financial record. Rows are only ever inserted,
// never updated or deleted.
type Invoice struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	HotelID       uint          `gorm:"uniqueIndex:idx_hotel_token;column:hotel_id" json:"hotel_id"`
	TokenNumber   int64         `gorm:"uniqueIndex:idx_hotel_token;column:token_number" json:"token_number"`
	SavedOrderID  *uint         `gorm:"column:saved_order_id" json:"saved_order_id,omitempty"`
	TableNumber   int           `gorm:"column:table_number" json:"table_number"`
	Subtotal      float64       `gorm:"type:decimal(10,2)" json:"subtotal"`
	Tax           float64       `gorm:"type:decimal(10,2)" json:"tax"`
	Total         float64       `gorm:"type:decimal(10,2)" json:"total"`
	PaymentMethod string        `gorm:"size:16;column:payment_method" json:"payment_method"`
	Lines         []InvoiceLine `gorm:"foreignKey:InvoiceID" json:"lines"`
	CreatedAt     time.Time     `json:"created_at"`
}

type InvoiceLine struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	InvoiceID uint    `gorm:"index;column:invoice_id" json:"invoice_id"`
	ItemName  string  `gorm:"size:255;column:item_name" json:"item_name"`
	UnitPrice float64 `gorm:"type:decimal(10,2);column:unit_price" json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// TokenCounter backs invoice token numbers: one durable row per hotel,
// incremented under a row lock so numbers are never reused or skipped.
type TokenCounter struct {
	HotelID uint  `gorm:"primaryKey;column:hotel_id" json:"hotel_id"`
	Value   int64 `json:"value"`
}
