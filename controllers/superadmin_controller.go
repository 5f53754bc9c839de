package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-backend/services"
	"restaurant-backend/utils"
)

type SuperadminController struct {
	Hotels *services.HotelService
}

func NewSuperadminController(hotels *services.HotelService) *SuperadminController {
	return &SuperadminController{Hotels: hotels}
}

func (sc *SuperadminController) ListHotels(c *gin.Context) {
	hotels, err := sc.Hotels.List()
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

type hotelStatusPayload struct {
	Status string `json:"status"`
}

func (sc *SuperadminController) SetHotelStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var payload hotelStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	hotel, err := sc.Hotels.SetStatus(uint(id), payload.Status)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (sc *SuperadminController) ListPackages(c *gin.Context) {
	pkgs, err := sc.Hotels.ListPackages()
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, pkgs)
}

func (sc *SuperadminController) CreatePackage(c *gin.Context) {
	var payload services.PackageInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	pkg, err := sc.Hotels.CreatePackage(payload)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, pkg)
}

func (sc *SuperadminController) DeletePackage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := sc.Hotels.DeletePackage(uint(id)); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

type assignPackagePayload struct {
	PackageID uint `json:"package_id"`
}

func (sc *SuperadminController) AssignPackage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var payload assignPackagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	hotel, err := sc.Hotels.AssignPackage(uint(id), payload.PackageID)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}
