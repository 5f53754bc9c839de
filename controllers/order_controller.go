package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-backend/middleware"
	"restaurant-backend/services"
	"restaurant-backend/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

type createOrderPayload struct {
	TableID uint                      `json:"table_id"`
	Lines   []services.OrderLineInput `json:"lines"`
}

func (oc *OrderController) Create(c *gin.Context) {
	var payload createOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	order, err := oc.Orders.CreateOrder(middleware.HotelID(c), payload.TableID, payload.Lines)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, order)
}

func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Orders.List(middleware.HotelID(c))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

// Kitchen serves the kitchen display: open orders plus the advance action
// are its entire write surface.
func (oc *OrderController) Kitchen(c *gin.Context) {
	orders, err := oc.Orders.ListKitchen(middleware.HotelID(c))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

func (oc *OrderController) Advance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}
	order, err := oc.Orders.Advance(middleware.HotelID(c), uint(id))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

func (oc *OrderController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}
	order, err := oc.Orders.Get(middleware.HotelID(c), uint(id))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}
