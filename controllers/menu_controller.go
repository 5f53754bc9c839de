package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-backend/middleware"
	"restaurant-backend/services"
	"restaurant-backend/utils"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

func (mc *MenuController) List(c *gin.Context) {
	hotelID := middleware.HotelID(c)

	if c.Query("all") == "true" {
		items, err := mc.Menu.ListAll(hotelID)
		if err != nil {
			utils.JSONAppError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, items)
		return
	}

	items, err := mc.Menu.ListAvailable(hotelID, c.Query("category"))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (mc *MenuController) Create(c *gin.Context) {
	var payload services.MenuItemInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	item, err := mc.Menu.AddItem(middleware.HotelID(c), payload)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

func (mc *MenuController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var payload services.MenuItemUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	item, err := mc.Menu.UpdateItem(middleware.HotelID(c), uint(id), payload)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

type availabilityPayload struct {
	Available *bool `json:"available"`
}

func (mc *MenuController) SetAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var payload availabilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Available == nil {
		utils.JSONError(c, http.StatusBadRequest, "available is required")
		return
	}
	item, err := mc.Menu.SetAvailability(middleware.HotelID(c), uint(id), *payload.Available)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}
