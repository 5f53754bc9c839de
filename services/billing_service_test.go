package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/apperrors"
	"restaurant-backend/models"
)

func TestBillTotalsScenario(t *testing.T) {
	// Margherita Pizza $14.99 x2 at 10% tax.
	subtotal, tax, total := billTotals([]pricedLine{{unitPrice: 14.99, quantity: 2}}, 0.10)
	assert.Equal(t, 29.98, subtotal)
	assert.Equal(t, 3.00, tax)
	assert.Equal(t, 32.98, total)
}

func TestBillTotalsRoundsOnceAtTheEnd(t *testing.T) {
	// Three lines whose per-line tax would each round differently.
	lines := []pricedLine{
		{unitPrice: 0.05, quantity: 1},
		{unitPrice: 0.05, quantity: 1},
		{unitPrice: 0.05, quantity: 1},
	}
	subtotal, tax, total := billTotals(lines, 0.10)
	assert.Equal(t, 0.15, subtotal)
	assert.Equal(t, 0.02, tax) // 0.015 rounded once, not 3x0.01
	assert.Equal(t, 0.17, total)
}

func TestSaveOrderComputesTotals(t *testing.T) {
	db := openTestDB(t)
	hotel := seedHotel(t, db, 0.10)
	pizza := seedMenuItem(t, db, hotel.ID, "Margherita Pizza", 14.99)
	svc := NewBillingService(db, NewSettingsService(db))

	saved, err := svc.SaveOrder(hotel.ID, 4, []CartLineInput{{MenuItemID: pizza.ID, Quantity: 2}})
	require.NoError(t, err)
	assert.Equal(t, 29.98, saved.Subtotal)
	assert.Equal(t, 3.00, saved.Tax)
	assert.Equal(t, 32.98, saved.Total)
	assert.False(t, saved.IsPaid)
	assert.NotEmpty(t, saved.PosNumber)
	require.Len(t, saved.Lines, 1)
	assert.Equal(t, "Margherita Pizza", saved.Lines[0].ItemName)
}

func TestSavedOrderPriceSnapshotSurvivesCatalogEdit(t *testing.T) {
	db := openTestDB(t)
	hotel := seedHotel(t, db, 0.10)
	item := seedMenuItem(t, db, hotel.ID, "Greek Salad", 10.00)
	billing := NewBillingService(db, NewSettingsService(db))
	menu := NewMenuService(db)

	saved, err := billing.SaveOrder(hotel.ID, 2, []CartLineInput{{MenuItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)

	newPrice := 12.00
	_, err = menu.UpdateItem(hotel.ID, item.ID, MenuItemUpdate{Price: &newPrice})
	require.NoError(t, err)

	invoice, err := billing.GenerateInvoice(hotel.ID, saved.PosNumber, models.PaymentMethodCash)
	require.NoError(t, err)
	require.Len(t, invoice.Lines, 1)
	assert.Equal(t, 10.00, invoice.Lines[0].UnitPrice)
	assert.Equal(t, 10.00, invoice.Subtotal)
	assert.Equal(t, 11.00, invoice.Total)
}

func TestGenerateInvoiceExactlyOncePerPosNumber(t *testing.T) {
	db := openTestDB(t)
	hotel := seedHotel(t, db, 0.10)
	item := seedMenuItem(t, db, hotel.ID, "Cheesecake", 6.99)
	svc := NewBillingService(db, NewSettingsService(db))

	saved, err := svc.SaveOrder(hotel.ID, 7, []CartLineInput{{MenuItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)

	_, err = svc.GenerateInvoice(hotel.ID, saved.PosNumber, models.PaymentMethodCard)
	require.NoError(t, err)

	_, err = svc.GenerateInvoice(hotel.ID, saved.PosNumber, models.PaymentMethodCard)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyPaid)
}

func TestGetSavedOrderCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	hotel := seedHotel(t, db, 0.10)
	item := seedMenuItem(t, db, hotel.ID, "Fresh Lemonade", 3.99)
	svc := NewBillingService(db, NewSettingsService(db))

	saved, err := svc.SaveOrder(hotel.ID, 1, []CartLineInput{{MenuItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)

	got, err := svc.GetSavedOrder(hotel.ID, "pos"+saved.PosNumber[3:])
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	_, err = svc.GetSavedOrder(hotel.ID, "POS000XXX")
	assert.ErrorIs(t, err, apperrors.ErrNotFoundOrAlreadyPaid)
}

func TestGenerateInvoiceRequiresPaymentMethod(t *testing.T) {
	db := openTestDB(t)
	hotel := seedHotel(t, db, 0.10)
	svc := NewBillingService(db, NewSettingsService(db))

	_, err := svc.GenerateInvoice(hotel.ID, "POS123456", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.GenerateDirectInvoice(hotel.ID, nil, 1, "cheque")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTokenNumbersContiguousUnderConcurrency(t *testing.T) {
	db := openTestDB(t)
	hotel := seedHotel(t, db, 0.10)
	item := seedMenuItem(t, db, hotel.ID, "Coca Cola", 2.99)
	svc := NewBillingService(db, NewSettingsService(db))

	const n = 10
	tokens := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			invoice, err := svc.GenerateDirectInvoice(hotel.ID,
				[]CartLineInput{{MenuItemID: item.ID, Quantity: 1}}, 1, models.PaymentMethodUPI)
			assert.NoError(t, err)
			tokens <- invoice.TokenNumber
		}()
	}
	wg.Wait()
	close(tokens)

	seen := map[int64]bool{}
	for tok := range tokens {
		assert.False(t, seen[tok], "token %d issued twice", tok)
		seen[tok] = true
	}
	// Contiguous: exactly 1..n with no gaps.
	for i := int64(1); i <= n; i++ {
		assert.True(t, seen[i], "token %d missing", i)
	}
}

func TestTokenNumbersSurviveAcrossGenerations(t *testing.T) {
	db := openTestDB(t)
	hotel := seedHotel(t, db, 0.10)
	item := seedMenuItem(t, db, hotel.ID, "Pepperoni Pizza", 16.99)

	// A fresh service over the same database continues the sequence: the
	// counter is durable, not process state.
	first := NewBillingService(db, NewSettingsService(db))
	inv1, err := first.GenerateDirectInvoice(hotel.ID,
		[]CartLineInput{{MenuItemID: item.ID, Quantity: 1}}, 1, models.PaymentMethodCash)
	require.NoError(t, err)

	second := NewBillingService(db, NewSettingsService(db))
	inv2, err := second.GenerateDirectInvoice(hotel.ID,
		[]CartLineInput{{MenuItemID: item.ID, Quantity: 1}}, 1, models.PaymentMethodCash)
	require.NoError(t, err)

	assert.Equal(t, inv1.TokenNumber+1, inv2.TokenNumber)
}

func TestBillingUsesTenantTaxRate(t *testing.T) {
	db := openTestDB(t)
	hotel := seedHotel(t, db, 0.05)
	item := seedMenuItem(t, db, hotel.ID, "Fettuccine Alfredo", 14.99)
	svc := NewBillingService(db, NewSettingsService(db))

	invoice, err := svc.GenerateDirectInvoice(hotel.ID,
		[]CartLineInput{{MenuItemID: item.ID, Quantity: 2}}, 5, models.PaymentMethodCard)
	require.NoError(t, err)
	assert.Equal(t, 29.98, invoice.Subtotal)
	assert.Equal(t, 1.50, invoice.Tax)
	assert.Equal(t, 31.48, invoice.Total)
}

func TestBillingHonorsZeroTaxRate(t *testing.T) {
	db := openTestDB(t)
	hotel := seedHotel(t, db, 0.10)
	item := seedMenuItem(t, db, hotel.ID, "Margherita Pizza", 14.99)
	settings := NewSettingsService(db)
	svc := NewBillingService(db, settings)

	// A tax-free configuration is valid and must not fall back to any default.
	zero := 0.0
	_, err := settings.Update(hotel.ID, SettingsUpdate{TaxRate: &zero})
	require.NoError(t, err)

	invoice, err := svc.GenerateDirectInvoice(hotel.ID,
		[]CartLineInput{{MenuItemID: item.ID, Quantity: 2}}, 3, models.PaymentMethodCash)
	require.NoError(t, err)
	assert.Equal(t, 29.98, invoice.Subtotal)
	assert.Equal(t, 0.00, invoice.Tax)
	assert.Equal(t, 29.98, invoice.Total)
}

func TestBillingDefaultsTaxRateWithoutSettingsRow(t *testing.T) {
	db := openTestDB(t)
	hotel := models.Hotel{Name: "La Bella Italia", Status: models.HotelStatusActive}
	require.NoError(t, db.Create(&hotel).Error)
	item := seedMenuItem(t, db, hotel.ID, "Margherita Pizza", 14.99)
	svc := NewBillingService(db, NewSettingsService(db))

	saved, err := svc.SaveOrder(hotel.ID, 2, []CartLineInput{{MenuItemID: item.ID, Quantity: 2}})
	require.NoError(t, err)
	assert.Equal(t, 3.00, saved.Tax)
}

func TestInvoicesAreTenantScoped(t *testing.T) {
	db := openTestDB(t)
	hotel := seedHotel(t, db, 0.10)
	other := seedHotel(t, db, 0.10)
	item := seedMenuItem(t, db, hotel.ID, "Tiramisu", 7.99)
	svc := NewBillingService(db, NewSettingsService(db))

	saved, err := svc.SaveOrder(hotel.ID, 1, []CartLineInput{{MenuItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)

	// Another hotel cannot see or settle the parked order.
	_, err = svc.GetSavedOrder(other.ID, saved.PosNumber)
	assert.ErrorIs(t, err, apperrors.ErrNotFoundOrAlreadyPaid)
	_, err = svc.GenerateInvoice(other.ID, saved.PosNumber, models.PaymentMethodCash)
	assert.ErrorIs(t, err, apperrors.ErrNotFoundOrAlreadyPaid)
}
