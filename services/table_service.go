package services

import (
	"errors"

	"gorm.io/gorm"

	"restaurant-backend/apperrors"
	"restaurant-backend/models"
)

type TableService struct {
	DB *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{DB: db}
}

func (s *TableService) Create(hotelID uint, number, capacity int) (models.Table, error) {
	if number <= 0 || capacity <= 0 {
		return models.Table{}, apperrors.ErrValidation
	}
	table := models.Table{
		HotelID:  hotelID,
		Number:   number,
		Capacity: capacity,
		Status:   models.TableStatusFree,
	}
	if err := s.DB.Create(&table).Error; err != nil {
		return models.Table{}, err
	}
	return table, nil
}

func (s *TableService) List(hotelID uint) ([]models.Table, error) {
	var tables []models.Table
	err := s.DB.Where("hotel_id = ?", hotelID).Order("number").Find(&tables).Error
	return tables, err
}

// SetStatus is the explicit staff action for table state. Vacating a table
// is never automatic, regardless of order or billing progress.
func (s *TableService) SetStatus(hotelID, tableID uint, status string) (models.Table, error) {
	if !models.ValidTableStatus(status) {
		return models.Table{}, apperrors.ErrValidation
	}
	var table models.Table
	if err := s.DB.Where("hotel_id = ?", hotelID).First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Table{}, apperrors.ErrNotFound
		}
		return models.Table{}, err
	}
	if table.Status == status {
		return table, nil
	}
	if err := s.DB.Model(&table).Update("status", status).Error; err != nil {
		return models.Table{}, err
	}
	table.Status = status
	return table, nil
}
