package models

import "time"

const (
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
	RoleSuperadmin = "superadmin"
)

// UserRole maps an identity-provider user to a role within one hotel.
// Superadmin rows carry HotelID 0: they are not scoped to any tenant.
type UserRole struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:36;uniqueIndex:idx_user_hotel;column:user_id" json:"user_id"`
	Role      string    `gorm:"size:32" json:"role"`
	HotelID   uint      `gorm:"uniqueIndex:idx_user_hotel;column:hotel_id" json:"hotel_id"`
	CreatedAt time.Time `json:"created_at"`
}
