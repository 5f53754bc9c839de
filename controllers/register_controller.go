package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-backend/services"
	"restaurant-backend/utils"
)

type RegisterController struct {
	Provisioning *services.ProvisioningService
}

func NewRegisterController(p *services.ProvisioningService) *RegisterController {
	return &RegisterController{Provisioning: p}
}

// Register provisions a new hotel with its admin and staff accounts.
// Double submission fails on admin-email uniqueness inside the saga.
func (rc *RegisterController) Register(c *gin.Context) {
	var payload services.RegistrationInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	hotel, err := rc.Provisioning.Register(payload)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"hotel": gin.H{"id": hotel.ID, "name": hotel.Name},
	})
}
