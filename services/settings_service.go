package services

import (
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"restaurant-backend/apperrors"
	"restaurant-backend/models"
)

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

func (s *SettingsService) Get(hotelID uint) (models.RestaurantSetting, error) {
	var setting models.RestaurantSetting
	err := s.DB.Where("hotel_id = ?", hotelID).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RestaurantSetting{}, apperrors.ErrNotFound
		}
		return models.RestaurantSetting{}, err
	}
	return setting, nil
}

type SettingsUpdate struct {
	Name          *string         `json:"name"`
	Address       *string         `json:"address"`
	Phone         *string         `json:"phone"`
	Email         *string         `json:"email"`
	TaxRate       *float64        `json:"tax_rate"`
	Currency      *string         `json:"currency"`
	InvoiceFooter *string         `json:"invoice_footer"`
	Features      *datatypes.JSON `json:"features"`
}

func (s *SettingsService) Update(hotelID uint, in SettingsUpdate) (models.RestaurantSetting, error) {
	setting, err := s.Get(hotelID)
	if err != nil {
		return models.RestaurantSetting{}, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		updates["address"] = strings.TrimSpace(*in.Address)
	}
	if in.Phone != nil {
		updates["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.TaxRate != nil {
		if *in.TaxRate < 0 || *in.TaxRate >= 1 {
			return models.RestaurantSetting{}, apperrors.ErrValidation
		}
		updates["tax_rate"] = *in.TaxRate
	}
	if in.Currency != nil {
		updates["currency"] = strings.ToUpper(strings.TrimSpace(*in.Currency))
	}
	if in.InvoiceFooter != nil {
		updates["invoice_footer"] = *in.InvoiceFooter
	}
	if in.Features != nil {
		updates["features"] = *in.Features
	}
	if len(updates) == 0 {
		return setting, nil
	}

	if err := s.DB.Model(&setting).Updates(updates).Error; err != nil {
		return models.RestaurantSetting{}, err
	}
	return s.Get(hotelID)
}
