package models

import "time"

const (
	ExpenseIngredients = "ingredients"
	ExpenseUtilities   = "utilities"
	ExpenseSalaries    = "salaries"
	ExpenseMaintenance = "maintenance"
	ExpenseMarketing   = "marketing"
	ExpenseEquipment   = "equipment"
	ExpenseOther       = "other"
)

func ValidExpenseCategory(c string) bool {
	switch c {
	case ExpenseIngredients, ExpenseUtilities, ExpenseSalaries,
		ExpenseMaintenance, ExpenseMarketing, ExpenseEquipment, ExpenseOther:
		return true
	}
	return false
}

type Expense struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HotelID   uint      `gorm:"index;column:hotel_id" json:"hotel_id"`
	Title     string    `gorm:"size:255" json:"title"`
	Category  string    `gorm:"size:32" json:"category"`
	Amount    float64   `gorm:"type:decimal(10,2)" json:"amount"`
	Date      time.Time `json:"date"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy string    `gorm:"size:36;column:created_by" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
