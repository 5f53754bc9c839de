package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/apperrors"
	"restaurant-backend/identity"
	"restaurant-backend/models"
)

// flakyProvider wraps the real provider and fails CreateUser on the n-th
// call, so each saga step can be broken in isolation.
type flakyProvider struct {
	identity.Provider
	calls      int
	failOnCall int
}

func (p *flakyProvider) CreateUser(email, password, name string) (identity.Account, error) {
	p.calls++
	if p.calls == p.failOnCall {
		return identity.Account{}, errors.New("identity provider unavailable")
	}
	return p.Provider.CreateUser(email, password, name)
}

func registrationInput() RegistrationInput {
	return RegistrationInput{
		HotelName:     "La Bella Italia",
		AdminName:     "Ada Owner",
		AdminEmail:    "owner@labella.example",
		AdminPassword: "secret-admin",
		StaffEmail:    "staff@labella.example",
		StaffPassword: "secret-staff",
	}
}

func TestRegisterProvisionsFullTenant(t *testing.T) {
	db := openTestDB(t)
	provider := identity.NewService(db)
	svc := NewProvisioningService(db, provider)

	hotel, err := svc.Register(registrationInput())
	require.NoError(t, err)
	assert.NotZero(t, hotel.ID)
	assert.Equal(t, models.HotelStatusActive, hotel.Status)

	admin, err := provider.Authenticate("owner@labella.example", "secret-admin")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, hotel.AdminUserID)

	staff, err := provider.Authenticate("staff@labella.example", "secret-staff")
	require.NoError(t, err)
	assert.Equal(t, staff.ID, hotel.StaffUserID)

	var roles []models.UserRole
	require.NoError(t, db.Where("hotel_id = ?", hotel.ID).Order("role").Find(&roles).Error)
	require.Len(t, roles, 2)
	assert.Equal(t, models.RoleAdmin, roles[0].Role)
	assert.Equal(t, admin.ID, roles[0].UserID)
	assert.Equal(t, models.RoleStaff, roles[1].Role)
	assert.Equal(t, staff.ID, roles[1].UserID)

	setting, err := NewSettingsService(db).Get(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTaxRate, setting.TaxRate)
	assert.Equal(t, "USD", setting.Currency)
	assert.NotEmpty(t, setting.InvoiceFooter)
}

func TestRegisterDuplicateAdminEmailFailsBeforeAnythingExists(t *testing.T) {
	db := openTestDB(t)
	provider := identity.NewService(db)
	svc := NewProvisioningService(db, provider)

	_, err := svc.Register(registrationInput())
	require.NoError(t, err)

	in := registrationInput()
	in.HotelName = "Copycat Trattoria"
	in.StaffEmail = "other-staff@labella.example"
	_, err = svc.Register(in)
	assert.ErrorIs(t, err, apperrors.ErrAccountCreationFailed)

	var hotels int64
	require.NoError(t, db.Model(&models.Hotel{}).Count(&hotels).Error)
	assert.EqualValues(t, 1, hotels)

	var accounts int64
	require.NoError(t, db.Model(&identity.Account{}).Count(&accounts).Error)
	assert.EqualValues(t, 2, accounts)
}

func TestRegisterStaffFailureDeletesAdminAccount(t *testing.T) {
	db := openTestDB(t)
	provider := &flakyProvider{Provider: identity.NewService(db), failOnCall: 2}
	svc := NewProvisioningService(db, provider)

	_, err := svc.Register(registrationInput())
	assert.ErrorIs(t, err, apperrors.ErrAccountCreationFailed)

	var accounts int64
	require.NoError(t, db.Model(&identity.Account{}).Count(&accounts).Error)
	assert.EqualValues(t, 0, accounts)

	var hotels int64
	require.NoError(t, db.Model(&models.Hotel{}).Count(&hotels).Error)
	assert.EqualValues(t, 0, hotels)
}

func TestRegisterAdminFailureLeavesNothing(t *testing.T) {
	db := openTestDB(t)
	provider := &flakyProvider{Provider: identity.NewService(db), failOnCall: 1}
	svc := NewProvisioningService(db, provider)

	_, err := svc.Register(registrationInput())
	assert.ErrorIs(t, err, apperrors.ErrAccountCreationFailed)

	var accounts int64
	require.NoError(t, db.Model(&identity.Account{}).Count(&accounts).Error)
	assert.EqualValues(t, 0, accounts)
}

func TestRegisterTenantStepFailureDeletesBothAccounts(t *testing.T) {
	db := openTestDB(t)
	provider := identity.NewService(db)
	svc := NewProvisioningService(db, provider)

	// Force step 3 to fail by dropping the settings table out from under
	// the transaction.
	require.NoError(t, db.Migrator().DropTable(&models.RestaurantSetting{}))

	_, err := svc.Register(registrationInput())
	assert.ErrorIs(t, err, apperrors.ErrPartialProvisioning)

	var accounts int64
	require.NoError(t, db.Model(&identity.Account{}).Count(&accounts).Error)
	assert.EqualValues(t, 0, accounts)

	var hotels int64
	require.NoError(t, db.Model(&models.Hotel{}).Count(&hotels).Error)
	assert.EqualValues(t, 0, hotels)

	var roles int64
	require.NoError(t, db.Model(&models.UserRole{}).Count(&roles).Error)
	assert.EqualValues(t, 0, roles)
}

func TestRegisterValidatesInput(t *testing.T) {
	db := openTestDB(t)
	svc := NewProvisioningService(db, identity.NewService(db))

	in := registrationInput()
	in.HotelName = "  "
	_, err := svc.Register(in)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	in = registrationInput()
	in.StaffPassword = ""
	_, err = svc.Register(in)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
