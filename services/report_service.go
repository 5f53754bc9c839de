package services

import (
	"time"

	"gorm.io/gorm"

	"restaurant-backend/models"
)

// ReportService aggregates invoices and expenses for the admin dashboard.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type DailySales struct {
	Date     string  `json:"date"`
	Total    float64 `json:"total"`
	Invoices int64   `json:"invoices"`
}

// DailySales groups invoice totals by calendar day over the given window.
func (s *ReportService) DailySales(hotelID uint, from, to time.Time) ([]DailySales, error) {
	rows := []DailySales{}
	err := s.DB.Model(&models.Invoice{}).
		Select("DATE(created_at) AS date, SUM(total) AS total, COUNT(*) AS invoices").
		Where("hotel_id = ? AND created_at >= ? AND created_at < ?", hotelID, from, to).
		Group("DATE(created_at)").
		Order("date").
		Scan(&rows).Error
	return rows, err
}

type PaymentSplit struct {
	PaymentMethod string  `json:"payment_method"`
	Total         float64 `json:"total"`
	Invoices      int64   `json:"invoices"`
}

func (s *ReportService) PaymentSplit(hotelID uint, from, to time.Time) ([]PaymentSplit, error) {
	rows := []PaymentSplit{}
	err := s.DB.Model(&models.Invoice{}).
		Select("payment_method, SUM(total) AS total, COUNT(*) AS invoices").
		Where("hotel_id = ? AND created_at >= ? AND created_at < ?", hotelID, from, to).
		Group("payment_method").
		Order("payment_method").
		Scan(&rows).Error
	return rows, err
}

type ExpenseByCategory struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

func (s *ReportService) ExpensesByCategory(hotelID uint, from, to time.Time) ([]ExpenseByCategory, error) {
	rows := []ExpenseByCategory{}
	err := s.DB.Model(&models.Expense{}).
		Select("category, SUM(amount) AS total").
		Where("hotel_id = ? AND date >= ? AND date < ?", hotelID, from, to).
		Group("category").
		Order("category").
		Scan(&rows).Error
	return rows, err
}
