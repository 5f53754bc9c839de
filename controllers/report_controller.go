package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-backend/middleware"
	"restaurant-backend/services"
	"restaurant-backend/utils"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// reportWindow parses from/to query params, defaulting to the last 30
// days.
func reportWindow(c *gin.Context) (time.Time, time.Time) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = t.AddDate(0, 0, 1)
		}
	}
	return from, to
}

func (rc *ReportController) DailySales(c *gin.Context) {
	from, to := reportWindow(c)
	rows, err := rc.Reports.DailySales(middleware.HotelID(c), from, to)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

func (rc *ReportController) PaymentSplit(c *gin.Context) {
	from, to := reportWindow(c)
	rows, err := rc.Reports.PaymentSplit(middleware.HotelID(c), from, to)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

func (rc *ReportController) ExpensesByCategory(c *gin.Context) {
	from, to := reportWindow(c)
	rows, err := rc.Reports.ExpensesByCategory(middleware.HotelID(c), from, to)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}
