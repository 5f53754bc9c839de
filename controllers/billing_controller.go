package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-backend/middleware"
	"restaurant-backend/services"
	"restaurant-backend/utils"
)

type BillingController struct {
	Billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{Billing: billing}
}

type saveOrderPayload struct {
	TableNumber int                      `json:"table_number"`
	Lines       []services.CartLineInput `json:"lines"`
}

func (bc *BillingController) SaveOrder(c *gin.Context) {
	var payload saveOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	saved, err := bc.Billing.SaveOrder(middleware.HotelID(c), payload.TableNumber, payload.Lines)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, saved)
}

func (bc *BillingController) GetSavedOrder(c *gin.Context) {
	saved, err := bc.Billing.GetSavedOrder(middleware.HotelID(c), c.Param("posNumber"))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, saved)
}

type invoicePayload struct {
	PosNumber     string `json:"pos_number"`
	PaymentMethod string `json:"payment_method"`
}

func (bc *BillingController) GenerateInvoice(c *gin.Context) {
	var payload invoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	invoice, err := bc.Billing.GenerateInvoice(middleware.HotelID(c), payload.PosNumber, payload.PaymentMethod)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, invoice)
}

type directInvoicePayload struct {
	TableNumber   int                      `json:"table_number"`
	PaymentMethod string                   `json:"payment_method"`
	Lines         []services.CartLineInput `json:"lines"`
}

func (bc *BillingController) GenerateDirectInvoice(c *gin.Context) {
	var payload directInvoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	invoice, err := bc.Billing.GenerateDirectInvoice(
		middleware.HotelID(c), payload.Lines, payload.TableNumber, payload.PaymentMethod)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, invoice)
}

func (bc *BillingController) ListInvoices(c *gin.Context) {
	invoices, err := bc.Billing.ListInvoices(middleware.HotelID(c))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoices)
}
