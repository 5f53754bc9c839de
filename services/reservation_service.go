package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"restaurant-backend/apperrors"
	"restaurant-backend/models"
)

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

type ReservationInput struct {
	TableID       uint      `json:"table_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Date          time.Time `json:"date"`
	PartySize     int       `json:"party_size"`
	Notes         string    `json:"notes"`
}

// Create records a reservation and marks the table reserved. The table
// goes back to free only through an explicit staff status change.
func (s *ReservationService) Create(hotelID uint, in ReservationInput) (models.Reservation, error) {
	if strings.TrimSpace(in.CustomerName) == "" || in.PartySize <= 0 {
		return models.Reservation{}, apperrors.ErrValidation
	}

	var reservation models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Where("hotel_id = ?", hotelID).First(&table, in.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if table.Status != models.TableStatusFree {
			return apperrors.ErrValidation
		}

		reservation = models.Reservation{
			HotelID:       hotelID,
			TableID:       table.ID,
			CustomerName:  strings.TrimSpace(in.CustomerName),
			CustomerPhone: strings.TrimSpace(in.CustomerPhone),
			Date:          in.Date,
			PartySize:     in.PartySize,
			Notes:         strings.TrimSpace(in.Notes),
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}
		return tx.Model(&table).Update("status", models.TableStatusReserved).Error
	})
	if err != nil {
		return models.Reservation{}, err
	}
	return reservation, nil
}

func (s *ReservationService) List(hotelID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Where("hotel_id = ?", hotelID).Order("date").Find(&reservations).Error
	return reservations, err
}

// Cancel removes the reservation and frees its table if no other active
// reservation holds it.
func (s *ReservationService) Cancel(hotelID, id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.Where("hotel_id = ?", hotelID).First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&reservation).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&models.Reservation{}).
			Where("hotel_id = ? AND table_id = ?", hotelID, reservation.TableID).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			return tx.Model(&models.Table{}).
				Where("id = ? AND status = ?", reservation.TableID, models.TableStatusReserved).
				Update("status", models.TableStatusFree).Error
		}
		return nil
	})
}
