package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	HotelStatusActive  = "active"
	HotelStatusBlocked = "blocked"
)

type Hotel struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255" json:"name"`
	AdminUserID string `gorm:"size:36;index;column:admin_user_id" json:"admin_user_id"`
	StaffUserID string `gorm:"size:36;index;column:staff_user_id" json:"staff_user_id"`
	Status      string `gorm:"size:32;default:active" json:"status"`

	SubscriptionPackageID *uint      `gorm:"column:subscription_package_id" json:"subscription_package_id,omitempty"`
	SubscriptionStart     *time.Time `gorm:"column:subscription_start" json:"subscription_start,omitempty"`
	SubscriptionEnd       *time.Time `gorm:"column:subscription_end" json:"subscription_end,omitempty"`

	SubscriptionPackage SubscriptionPackage `gorm:"foreignKey:SubscriptionPackageID" json:"subscription_package,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (h *Hotel) Blocked() bool {
	return h.Status == HotelStatusBlocked
}
