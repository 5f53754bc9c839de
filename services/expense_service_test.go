package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/apperrors"
	"restaurant-backend/models"
)

func TestAddExpenseValidation(t *testing.T) {
	db := openTestDB(t)
	hotel := seedHotel(t, db, 0.10)
	svc := NewExpenseService(db)

	_, err := svc.Add(hotel.ID, "u1", ExpenseInput{Title: "", Category: models.ExpenseUtilities, Amount: 10})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Add(hotel.ID, "u1", ExpenseInput{Title: "Electricity bill", Category: "fun", Amount: 10})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Add(hotel.ID, "u1", ExpenseInput{Title: "Electricity bill", Category: models.ExpenseUtilities, Amount: 0})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	expense, err := svc.Add(hotel.ID, "u1", ExpenseInput{
		Title:    "Electricity bill",
		Category: models.ExpenseUtilities,
		Amount:   280,
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", expense.CreatedBy)
	assert.False(t, expense.Date.IsZero())
}

func TestDeleteExpenseTenantScoped(t *testing.T) {
	db := openTestDB(t)
	hotel := seedHotel(t, db, 0.10)
	other := seedHotel(t, db, 0.10)
	svc := NewExpenseService(db)

	expense, err := svc.Add(hotel.ID, "u1", ExpenseInput{
		Title:    "Weekly vegetables",
		Category: models.ExpenseIngredients,
		Amount:   450,
		Date:     time.Now(),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(other.ID, expense.ID), apperrors.ErrNotFound)
	require.NoError(t, svc.Delete(hotel.ID, expense.ID))
	assert.ErrorIs(t, svc.Delete(hotel.ID, expense.ID), apperrors.ErrNotFound)
}
