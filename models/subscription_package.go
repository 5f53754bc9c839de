package models

import "time"

type SubscriptionPackage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;uniqueIndex" json:"name"`
	Price        float64   `gorm:"type:decimal(10,2)" json:"price"`
	DurationDays int       `gorm:"column:duration_days" json:"duration_days"`
	Description  string    `gorm:"size:255" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
