package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"restaurant-backend/apperrors"
	"restaurant-backend/models"
)

type ExpenseService struct {
	DB *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{DB: db}
}

type ExpenseInput struct {
	Title    string    `json:"title"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
	Notes    string    `json:"notes"`
}

func (s *ExpenseService) Add(hotelID uint, createdBy string, in ExpenseInput) (models.Expense, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || in.Amount <= 0 || !models.ValidExpenseCategory(in.Category) {
		return models.Expense{}, apperrors.ErrValidation
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := models.Expense{
		HotelID:   hotelID,
		Title:     title,
		Category:  in.Category,
		Amount:    roundMoney(in.Amount),
		Date:      date,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedBy: createdBy,
	}
	if err := s.DB.Create(&expense).Error; err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

func (s *ExpenseService) List(hotelID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.DB.Where("hotel_id = ?", hotelID).Order("date DESC, id DESC").Find(&expenses).Error
	return expenses, err
}

func (s *ExpenseService) Delete(hotelID, id uint) error {
	res := s.DB.Where("hotel_id = ?", hotelID).Delete(&models.Expense{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
