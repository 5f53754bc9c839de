package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"restaurant-backend/apperrors"
	"restaurant-backend/models"
)

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

type MenuItemInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

func (s *MenuService) AddItem(hotelID uint, in MenuItemInput) (models.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price <= 0 {
		return models.MenuItem{}, apperrors.ErrValidation
	}

	item := models.MenuItem{
		HotelID:     hotelID,
		Name:        name,
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		Available:   true,
	}
	if err := s.DB.Create(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

type MenuItemUpdate struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
}

func (s *MenuService) UpdateItem(hotelID, id uint, in MenuItemUpdate) (models.MenuItem, error) {
	item, err := s.getItem(hotelID, id)
	if err != nil {
		return models.MenuItem{}, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return models.MenuItem{}, apperrors.ErrValidation
		}
		updates["name"] = name
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return models.MenuItem{}, apperrors.ErrValidation
		}
		updates["price"] = *in.Price
	}
	if in.Category != nil {
		updates["category"] = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		updates["description"] = strings.TrimSpace(*in.Description)
	}
	if len(updates) == 0 {
		return item, nil
	}

	if err := s.DB.Model(&item).Updates(updates).Error; err != nil {
		return models.MenuItem{}, err
	}
	return s.getItem(hotelID, id)
}

// SetAvailability soft-disables an item instead of deleting it, so lines
// already placed against it keep their name and price snapshot.
func (s *MenuService) SetAvailability(hotelID, id uint, available bool) (models.MenuItem, error) {
	item, err := s.getItem(hotelID, id)
	if err != nil {
		return models.MenuItem{}, err
	}
	if item.Available == available {
		return item, nil
	}
	if err := s.DB.Model(&item).Update("available", available).Error; err != nil {
		return models.MenuItem{}, err
	}
	item.Available = available
	return item, nil
}

// ListAvailable returns available items in insertion order, optionally
// filtered to one category.
func (s *MenuService) ListAvailable(hotelID uint, category string) ([]models.MenuItem, error) {
	q := s.DB.Where("hotel_id = ? AND available = ?", hotelID, true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []models.MenuItem
	err := q.Order("id").Find(&items).Error
	return items, err
}

func (s *MenuService) ListAll(hotelID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.DB.Where("hotel_id = ?", hotelID).Order("id").Find(&items).Error
	return items, err
}

func (s *MenuService) getItem(hotelID, id uint) (models.MenuItem, error) {
	var item models.MenuItem
	err := s.DB.Where("hotel_id = ?", hotelID).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, apperrors.ErrNotFound
		}
		return models.MenuItem{}, err
	}
	return item, nil
}
