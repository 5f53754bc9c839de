package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurant-backend/apperrors"
	"restaurant-backend/models"
)

// BillingService converts priced lines into immutable invoices. Mutations
// are serialized per hotel on top of the transactional guards, so invoice
// generation from one saved order is exactly-once even under concurrent
// requests.
type BillingService struct {
	DB       *gorm.DB
	settings *SettingsService

	locks sync.Map // hotelID -> *sync.Mutex
}

func NewBillingService(db *gorm.DB, settings *SettingsService) *BillingService {
	return &BillingService{DB: db, settings: settings}
}

func (s *BillingService) lock(hotelID uint) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(hotelID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

type CartLineInput struct {
	MenuItemID uint `json:"menu_item_id"`
	Quantity   int  `json:"quantity"`
}

// SaveOrder parks a cart as a bill to be settled later, addressable by the
// generated POS number.
func (s *BillingService) SaveOrder(hotelID uint, tableNumber int, cart []CartLineInput) (models.SavedOrder, error) {
	if len(cart) == 0 {
		return models.SavedOrder{}, apperrors.ErrEmptyOrder
	}

	mu := s.lock(hotelID)
	mu.Lock()
	defer mu.Unlock()

	taxRate, err := s.taxRate(hotelID)
	if err != nil {
		return models.SavedOrder{}, err
	}

	var saved models.SavedOrder
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		lines, priced, err := snapshotCart(tx, hotelID, cart)
		if err != nil {
			return err
		}
		subtotal, tax, total := billTotals(priced, taxRate)

		saved = models.SavedOrder{
			HotelID:     hotelID,
			TableNumber: tableNumber,
			Subtotal:    subtotal,
			Tax:         tax,
			Total:       total,
			Lines:       lines,
		}

		// Retry POS number generation on the rare unique collision.
		for attempt := 0; attempt < 5; attempt++ {
			saved.PosNumber = generatePosNumber()
			createErr := tx.Create(&saved).Error
			if createErr == nil {
				return nil
			}
			lc := strings.ToLower(createErr.Error())
			if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint") {
				saved.ID = 0
				continue
			}
			return createErr
		}
		return fmt.Errorf("could not allocate a unique pos number")
	})
	if err != nil {
		return models.SavedOrder{}, err
	}
	return saved, nil
}

// GetSavedOrder looks up an unpaid saved order by POS number,
// case-insensitively.
func (s *BillingService) GetSavedOrder(hotelID uint, posNumber string) (models.SavedOrder, error) {
	var saved models.SavedOrder
	err := s.DB.Preload("Lines").
		Where("hotel_id = ? AND LOWER(pos_number) = ? AND is_paid = ?",
			hotelID, strings.ToLower(strings.TrimSpace(posNumber)), false).
		First(&saved).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SavedOrder{}, apperrors.ErrNotFoundOrAlreadyPaid
		}
		return models.SavedOrder{}, err
	}
	return saved, nil
}

// GenerateInvoice settles a saved order. In one transaction it flips
// is_paid with a guarded update, increments the hotel's token counter
// under a row lock and inserts the invoice; either all of that happens or
// none of it.
func (s *BillingService) GenerateInvoice(hotelID uint, posNumber, paymentMethod string) (models.Invoice, error) {
	if !models.ValidPaymentMethod(paymentMethod) {
		return models.Invoice{}, apperrors.ErrValidation
	}

	mu := s.lock(hotelID)
	mu.Lock()
	defer mu.Unlock()

	var invoice models.Invoice
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var saved models.SavedOrder
		err := tx.Preload("Lines").
			Where("hotel_id = ? AND LOWER(pos_number) = ?",
				hotelID, strings.ToLower(strings.TrimSpace(posNumber))).
			First(&saved).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFoundOrAlreadyPaid
			}
			return err
		}

		// One-way flip: losing a race here means someone already billed it.
		res := tx.Model(&models.SavedOrder{}).
			Where("id = ? AND is_paid = ?", saved.ID, false).
			Update("is_paid", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrAlreadyPaid
		}

		token, err := nextTokenNumber(tx, hotelID)
		if err != nil {
			return err
		}

		sourceID := saved.ID
		invoice = models.Invoice{
			HotelID:       hotelID,
			TokenNumber:   token,
			SavedOrderID:  &sourceID,
			TableNumber:   saved.TableNumber,
			Subtotal:      saved.Subtotal,
			Tax:           saved.Tax,
			Total:         saved.Total,
			PaymentMethod: paymentMethod,
		}
		for _, l := range saved.Lines {
			invoice.Lines = append(invoice.Lines, models.InvoiceLine{
				ItemName:  l.ItemName,
				UnitPrice: l.UnitPrice,
				Quantity:  l.Quantity,
			})
		}
		return tx.Create(&invoice).Error
	})
	if err != nil {
		return models.Invoice{}, err
	}
	return invoice, nil
}

// GenerateDirectInvoice bills an ad hoc item selection with no parked
// order behind it; the invoice is the only artifact.
func (s *BillingService) GenerateDirectInvoice(hotelID uint, cart []CartLineInput, tableNumber int, paymentMethod string) (models.Invoice, error) {
	if !models.ValidPaymentMethod(paymentMethod) {
		return models.Invoice{}, apperrors.ErrValidation
	}
	if len(cart) == 0 {
		return models.Invoice{}, apperrors.ErrEmptyOrder
	}

	mu := s.lock(hotelID)
	mu.Lock()
	defer mu.Unlock()

	taxRate, err := s.taxRate(hotelID)
	if err != nil {
		return models.Invoice{}, err
	}

	var invoice models.Invoice
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		lines, priced, err := snapshotCart(tx, hotelID, cart)
		if err != nil {
			return err
		}
		subtotal, tax, total := billTotals(priced, taxRate)

		token, err := nextTokenNumber(tx, hotelID)
		if err != nil {
			return err
		}

		invoice = models.Invoice{
			HotelID:       hotelID,
			TokenNumber:   token,
			TableNumber:   tableNumber,
			Subtotal:      subtotal,
			Tax:           tax,
			Total:         total,
			PaymentMethod: paymentMethod,
		}
		for _, l := range lines {
			invoice.Lines = append(invoice.Lines, models.InvoiceLine{
				ItemName:  l.ItemName,
				UnitPrice: l.UnitPrice,
				Quantity:  l.Quantity,
			})
		}
		return tx.Create(&invoice).Error
	})
	if err != nil {
		return models.Invoice{}, err
	}
	return invoice, nil
}

func (s *BillingService) ListInvoices(hotelID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.DB.Preload("Lines").Where("hotel_id = ?", hotelID).
		Order("token_number").Find(&invoices).Error
	return invoices, err
}

// taxRate returns the hotel's configured rate verbatim; zero is a valid,
// tax-free configuration. The default applies only when no settings row
// exists at all.
func (s *BillingService) taxRate(hotelID uint) (float64, error) {
	setting, err := s.settings.Get(hotelID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return models.DefaultTaxRate, nil
		}
		return 0, err
	}
	return setting.TaxRate, nil
}

// nextTokenNumber increments the hotel's durable counter under a row lock
// and returns the new value. Numbers are strictly increasing and survive
// restarts; read-max-then-add would race, this does not.
func nextTokenNumber(tx *gorm.DB, hotelID uint) (int64, error) {
	q := tx
	// sqlite has no FOR UPDATE; its single writer covers the same ground.
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var counter models.TokenCounter
	err := q.Where("hotel_id = ?", hotelID).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		counter = models.TokenCounter{HotelID: hotelID, Value: 0}
		if err := tx.Create(&counter).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	counter.Value++
	if err := tx.Save(&counter).Error; err != nil {
		return 0, err
	}
	return counter.Value, nil
}

// snapshotCart resolves cart lines against the live catalog and freezes
// each item's name and price into saved-order lines.
func snapshotCart(tx *gorm.DB, hotelID uint, cart []CartLineInput) ([]models.SavedOrderLine, []pricedLine, error) {
	lines := make([]models.SavedOrderLine, 0, len(cart))
	priced := make([]pricedLine, 0, len(cart))
	for _, c := range cart {
		if c.Quantity <= 0 {
			return nil, nil, apperrors.ErrValidation
		}
		var item models.MenuItem
		if err := tx.Where("hotel_id = ? AND available = ?", hotelID, true).First(&item, c.MenuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperrors.ErrNotFound
			}
			return nil, nil, err
		}
		lines = append(lines, models.SavedOrderLine{
			MenuItemID: item.ID,
			ItemName:   item.Name,
			UnitPrice:  item.Price,
			Quantity:   c.Quantity,
		})
		priced = append(priced, pricedLine{unitPrice: item.Price, quantity: c.Quantity})
	}
	return lines, priced, nil
}

func generatePosNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return fmt.Sprintf("POS%06d", 0)
	}
	return fmt.Sprintf("POS%06d", n.Int64())
}
