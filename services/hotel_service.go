package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"restaurant-backend/apperrors"
	"restaurant-backend/models"
)

// HotelService is the superadmin surface: tenant listing, blocking and
// subscription package management.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) Get(id uint) (models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.Preload("SubscriptionPackage").First(&hotel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Hotel{}, apperrors.ErrNotFound
		}
		return models.Hotel{}, err
	}
	return hotel, nil
}

func (s *HotelService) List() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.Preload("SubscriptionPackage").Order("id").Find(&hotels).Error
	return hotels, err
}

// SetStatus blocks or unblocks a tenant. A blocked tenant is rejected at
// every API boundary by the auth middleware, not just hidden.
func (s *HotelService) SetStatus(id uint, status string) (models.Hotel, error) {
	if status != models.HotelStatusActive && status != models.HotelStatusBlocked {
		return models.Hotel{}, apperrors.ErrValidation
	}
	hotel, err := s.Get(id)
	if err != nil {
		return models.Hotel{}, err
	}
	if hotel.Status == status {
		return hotel, nil
	}
	if err := s.DB.Model(&hotel).Update("status", status).Error; err != nil {
		return models.Hotel{}, err
	}
	hotel.Status = status
	return hotel, nil
}

type PackageInput struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
	Description  string  `json:"description"`
}

func (s *HotelService) CreatePackage(in PackageInput) (models.SubscriptionPackage, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price < 0 || in.DurationDays <= 0 {
		return models.SubscriptionPackage{}, apperrors.ErrValidation
	}
	pkg := models.SubscriptionPackage{
		Name:         name,
		Price:        roundMoney(in.Price),
		DurationDays: in.DurationDays,
		Description:  strings.TrimSpace(in.Description),
	}
	if err := s.DB.Create(&pkg).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return models.SubscriptionPackage{}, apperrors.ErrDuplicate
		}
		return models.SubscriptionPackage{}, err
	}
	return pkg, nil
}

func (s *HotelService) ListPackages() ([]models.SubscriptionPackage, error) {
	var pkgs []models.SubscriptionPackage
	err := s.DB.Order("id").Find(&pkgs).Error
	return pkgs, err
}

func (s *HotelService) DeletePackage(id uint) error {
	res := s.DB.Delete(&models.SubscriptionPackage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AssignPackage starts a subscription window for the hotel based on the
// package duration.
func (s *HotelService) AssignPackage(hotelID, packageID uint) (models.Hotel, error) {
	hotel, err := s.Get(hotelID)
	if err != nil {
		return models.Hotel{}, err
	}

	var pkg models.SubscriptionPackage
	if err := s.DB.First(&pkg, packageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Hotel{}, apperrors.ErrNotFound
		}
		return models.Hotel{}, err
	}

	start := time.Now()
	end := start.AddDate(0, 0, pkg.DurationDays)
	err = s.DB.Model(&hotel).Updates(map[string]interface{}{
		"subscription_package_id": pkg.ID,
		"subscription_start":      start,
		"subscription_end":        end,
	}).Error
	if err != nil {
		return models.Hotel{}, err
	}
	return s.Get(hotelID)
}
