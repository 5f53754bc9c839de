package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-backend/config"
	"restaurant-backend/models"
	"restaurant-backend/utils"
)

var testSecret = []byte("test-secret")

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func testRouter(db *gorm.DB, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", Auth(testSecret), RequireRole(db, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"hotel_id": HotelID(c), "role": c.GetString(CtxRole)})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedUser(t *testing.T, db *gorm.DB, role string, hotelStatus string) (string, models.Hotel) {
	t.Helper()

	hotel := models.Hotel{Name: "La Bella Italia", Status: hotelStatus}
	require.NoError(t, db.Create(&hotel).Error)

	userID := "user-" + role
	hotelID := hotel.ID
	if role == models.RoleSuperadmin {
		hotelID = 0
	}
	require.NoError(t, db.Create(&models.UserRole{UserID: userID, Role: role, HotelID: hotelID}).Error)
	return userID, hotel
}

func TestAuthRejectsMissingOrBadToken(t *testing.T) {
	db := openTestDB(t)
	r := testRouter(db, models.RoleStaff)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "not-a-jwt").Code)

	expired, err := utils.GenerateToken(testSecret, "u1", models.RoleStaff, 1, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, expired).Code)
}

func TestRequireRoleResolvesFromDatabase(t *testing.T) {
	db := openTestDB(t)
	userID, hotel := seedUser(t, db, models.RoleStaff, models.HotelStatusActive)

	// Token claims admin, database says staff: the database wins.
	token, err := utils.GenerateToken(testSecret, userID, models.RoleAdmin, hotel.ID, time.Hour)
	require.NoError(t, err)

	adminOnly := testRouter(db, models.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, doRequest(adminOnly, token).Code)

	staffOK := testRouter(db, models.RoleAdmin, models.RoleStaff)
	assert.Equal(t, http.StatusOK, doRequest(staffOK, token).Code)
}

func TestBlockedTenantDeniedRegardlessOfRole(t *testing.T) {
	db := openTestDB(t)

	for _, role := range []string{models.RoleAdmin, models.RoleStaff} {
		userID, hotel := seedUser(t, db, role, models.HotelStatusBlocked)
		token, err := utils.GenerateToken(testSecret, userID, role, hotel.ID, time.Hour)
		require.NoError(t, err)

		r := testRouter(db, models.RoleAdmin, models.RoleStaff)
		w := doRequest(r, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "blocked")
	}
}

func TestSuperadminSkipsTenantCheck(t *testing.T) {
	db := openTestDB(t)
	userID, _ := seedUser(t, db, models.RoleSuperadmin, models.HotelStatusActive)

	token, err := utils.GenerateToken(testSecret, userID, models.RoleSuperadmin, 0, time.Hour)
	require.NoError(t, err)

	r := testRouter(db, models.RoleSuperadmin)
	assert.Equal(t, http.StatusOK, doRequest(r, token).Code)
}

func TestRoleResolutionDeterministicAcrossHotels(t *testing.T) {
	db := openTestDB(t)

	first := models.Hotel{Name: "La Bella Italia", Status: models.HotelStatusActive}
	require.NoError(t, db.Create(&first).Error)
	second := models.Hotel{Name: "Spice Garden", Status: models.HotelStatusActive}
	require.NoError(t, db.Create(&second).Error)

	// Memberships inserted newest-hotel-first; resolution must still pick
	// the lowest hotel id every time.
	userID := "user-two-hotels"
	require.NoError(t, db.Create(&models.UserRole{UserID: userID, Role: models.RoleStaff, HotelID: second.ID}).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: userID, Role: models.RoleAdmin, HotelID: first.ID}).Error)

	token, err := utils.GenerateToken(testSecret, userID, models.RoleAdmin, first.ID, time.Hour)
	require.NoError(t, err)

	r := testRouter(db, models.RoleAdmin)
	for i := 0; i < 5; i++ {
		w := doRequest(r, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), fmt.Sprintf(`"hotel_id":%d`, first.ID))
	}
}

func TestUserWithoutRoleIsForbidden(t *testing.T) {
	db := openTestDB(t)

	token, err := utils.GenerateToken(testSecret, "ghost", models.RoleStaff, 1, time.Hour)
	require.NoError(t, err)

	r := testRouter(db, models.RoleStaff)
	assert.Equal(t, http.StatusForbidden, doRequest(r, token).Code)
}
