package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-backend/apperrors"
	"restaurant-backend/identity"
	"restaurant-backend/middleware"
	"restaurant-backend/models"
	"restaurant-backend/utils"
)

type AuthController struct {
	DB        *gorm.DB
	Identity  identity.Provider
	JWTSecret []byte
	TokenTTL  time.Duration
}

func NewAuthController(db *gorm.DB, provider identity.Provider, secret []byte, ttl time.Duration) *AuthController {
	return &AuthController{DB: db, Identity: provider, JWTSecret: secret, TokenTTL: ttl}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(payload.Email) == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	account, err := ac.Identity.Authenticate(payload.Email, payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	// Same resolution order as the authorization middleware: lowest
	// hotel id first.
	var userRole models.UserRole
	if err := ac.DB.Where("user_id = ?", account.ID).Order("hotel_id").First(&userRole).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusForbidden, apperrors.ErrForbidden.Error())
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	// Blocked tenants cannot even log in.
	if userRole.Role != models.RoleSuperadmin {
		var hotel models.Hotel
		if err := ac.DB.First(&hotel, userRole.HotelID).Error; err != nil {
			utils.JSONError(c, http.StatusForbidden, apperrors.ErrForbidden.Error())
			return
		}
		if hotel.Blocked() {
			utils.JSONError(c, http.StatusForbidden, apperrors.ErrTenantBlocked.Error())
			return
		}
	}

	token, err := utils.GenerateToken(ac.JWTSecret, account.ID, userRole.Role, userRole.HotelID, ac.TokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       account.ID,
			"email":    account.Email,
			"name":     account.Name,
			"role":     userRole.Role,
			"hotel_id": userRole.HotelID,
		},
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	account, err := ac.Identity.Lookup(userID)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	var userRole models.UserRole
	if err := ac.DB.Where("user_id = ?", userID).Order("hotel_id").First(&userRole).Error; err != nil {
		utils.JSONError(c, http.StatusForbidden, apperrors.ErrForbidden.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"id":       account.ID,
		"email":    account.Email,
		"name":     account.Name,
		"role":     userRole.Role,
		"hotel_id": userRole.HotelID,
	})
}
