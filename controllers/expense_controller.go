package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-backend/middleware"
	"restaurant-backend/services"
	"restaurant-backend/utils"
)

type ExpenseController struct {
	Expenses *services.ExpenseService
}

func NewExpenseController(expenses *services.ExpenseService) *ExpenseController {
	return &ExpenseController{Expenses: expenses}
}

func (ec *ExpenseController) List(c *gin.Context) {
	expenses, err := ec.Expenses.List(middleware.HotelID(c))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, expenses)
}

func (ec *ExpenseController) Create(c *gin.Context) {
	var payload services.ExpenseInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	expense, err := ec.Expenses.Add(middleware.HotelID(c), c.GetString(middleware.CtxUserID), payload)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, expense)
}

func (ec *ExpenseController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := ec.Expenses.Delete(middleware.HotelID(c), uint(id)); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
