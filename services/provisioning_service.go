package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"restaurant-backend/apperrors"
	"restaurant-backend/identity"
	"restaurant-backend/models"
)

// ProvisioningService turns a registration request into a usable tenant:
// two accounts, the hotel record, role assignments and default settings.
// Each completed step has a compensation that runs, in reverse order, if a
// later step fails, so a failed registration leaves nothing behind.
type ProvisioningService struct {
	DB       *gorm.DB
	Identity identity.Provider
}

func NewProvisioningService(db *gorm.DB, provider identity.Provider) *ProvisioningService {
	return &ProvisioningService{DB: db, Identity: provider}
}

type RegistrationInput struct {
	HotelName     string `json:"hotel_name"`
	AdminName     string `json:"admin_name"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
	StaffEmail    string `json:"staff_email"`
	StaffPassword string `json:"staff_password"`
}

func (in RegistrationInput) validate() error {
	if strings.TrimSpace(in.HotelName) == "" ||
		strings.TrimSpace(in.AdminName) == "" ||
		strings.TrimSpace(in.AdminEmail) == "" ||
		in.AdminPassword == "" ||
		strings.TrimSpace(in.StaffEmail) == "" ||
		in.StaffPassword == "" {
		return apperrors.ErrValidation
	}
	return nil
}

func (s *ProvisioningService) Register(in RegistrationInput) (models.Hotel, error) {
	if err := in.validate(); err != nil {
		return models.Hotel{}, err
	}
	hotelName := strings.TrimSpace(in.HotelName)

	// Step 1: admin account. A duplicate email fails here, before anything
	// else exists.
	admin, err := s.Identity.CreateUser(in.AdminEmail, in.AdminPassword, strings.TrimSpace(in.AdminName))
	if err != nil {
		return models.Hotel{}, fmt.Errorf("%w: admin: %v", apperrors.ErrAccountCreationFailed, err)
	}

	// Step 2: staff account; on failure the admin account must not outlive
	// the registration.
	staff, err := s.Identity.CreateUser(in.StaffEmail, in.StaffPassword, hotelName+" Staff")
	if err != nil {
		_ = s.Identity.DeleteUser(admin.ID)
		return models.Hotel{}, fmt.Errorf("%w: staff: %v", apperrors.ErrAccountCreationFailed, err)
	}

	// Steps 3-5 share one transaction: hotel record, role assignments and
	// default settings commit together or not at all.
	var hotel models.Hotel
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		hotel = models.Hotel{
			Name:        hotelName,
			AdminUserID: admin.ID,
			StaffUserID: staff.ID,
			Status:      models.HotelStatusActive,
		}
		if err := tx.Create(&hotel).Error; err != nil {
			return err
		}

		roles := []models.UserRole{
			{UserID: admin.ID, Role: models.RoleAdmin, HotelID: hotel.ID},
			{UserID: staff.ID, Role: models.RoleStaff, HotelID: hotel.ID},
		}
		if err := tx.Create(&roles).Error; err != nil {
			return err
		}

		setting := models.RestaurantSetting{
			HotelID:       hotel.ID,
			Name:          hotelName,
			Email:         strings.ToLower(strings.TrimSpace(in.AdminEmail)),
			TaxRate:       models.DefaultTaxRate,
			Currency:      "USD",
			InvoiceFooter: "Thank you for dining with us!",
		}
		return tx.Create(&setting).Error
	})
	if err != nil {
		_ = s.Identity.DeleteUser(staff.ID)
		_ = s.Identity.DeleteUser(admin.ID)
		return models.Hotel{}, fmt.Errorf("%w: %v", apperrors.ErrPartialProvisioning, err)
	}

	return hotel, nil
}
