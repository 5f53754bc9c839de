package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-backend/apperrors"
	"restaurant-backend/models"
	"restaurant-backend/utils"
)

const (
	CtxUserID  = "user_id"
	CtxRole    = "role"
	CtxHotelID = "hotel_id"
)

// Auth validates the bearer token and stashes the user id. Role and
// tenant checks happen in RequireRole: a token claim is never trusted for
// authorization on its own.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" || tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": apperrors.ErrUnauthorized.Error()})
			return
		}

		claims, err := utils.ParseToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": apperrors.ErrUnauthorized.Error()})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Next()
	}
}

// RequireRole resolves the caller's role against user_roles, verifies it
// is one of the allowed roles, and rejects callers of blocked hotels.
// The blocked check applies to every tenant-scoped request, reads
// included, independent of the role result.
func RequireRole(db *gorm.DB, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(CtxUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": apperrors.ErrUnauthorized.Error()})
			return
		}

		// A user can hold roles in several hotels; resolution is
		// deterministic, lowest hotel id first, so a superadmin row
		// (hotel 0) always wins.
		var userRole models.UserRole
		if err := db.Where("user_id = ?", userID).Order("hotel_id").First(&userRole).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": apperrors.ErrForbidden.Error()})
			} else {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
			}
			return
		}

		allowed := false
		for _, r := range roles {
			if userRole.Role == r {
				allowed = true
				break
			}
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": apperrors.ErrForbidden.Error()})
			return
		}

		if userRole.Role != models.RoleSuperadmin {
			var hotel models.Hotel
			if err := db.First(&hotel, userRole.HotelID).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": apperrors.ErrForbidden.Error()})
				return
			}
			if hotel.Blocked() {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": apperrors.ErrTenantBlocked.Error()})
				return
			}
			c.Set(CtxHotelID, hotel.ID)
		}

		c.Set(CtxRole, userRole.Role)
		c.Next()
	}
}

// HotelID returns the tenant scope the middleware resolved for this
// request.
func HotelID(c *gin.Context) uint {
	v, ok := c.Get(CtxHotelID)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
