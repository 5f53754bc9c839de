package services

import (
	"errors"

	"gorm.io/gorm"

	"restaurant-backend/apperrors"
	"restaurant-backend/models"
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type OrderLineInput struct {
	MenuItemID uint `json:"menu_item_id"`
	Quantity   int  `json:"quantity"`
}

// CreateOrder submits a cart as a kitchen order. Each line snapshots the
// menu item's current name and price; the referenced table becomes
// occupied in the same transaction. Freeing the table again is a separate
// staff action, not tied to order status.
func (s *OrderService) CreateOrder(hotelID, tableID uint, lines []OrderLineInput) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, apperrors.ErrEmptyOrder
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return models.Order{}, apperrors.ErrValidation
		}
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Where("hotel_id = ?", hotelID).First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}

		order = models.Order{
			HotelID: hotelID,
			TableID: table.ID,
			Status:  models.OrderStatusNew,
		}

		priced := make([]pricedLine, 0, len(lines))
		for _, l := range lines {
			var item models.MenuItem
			if err := tx.Where("hotel_id = ? AND available = ?", hotelID, true).First(&item, l.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrNotFound
				}
				return err
			}
			order.Lines = append(order.Lines, models.OrderLine{
				MenuItemID: item.ID,
				ItemName:   item.Name,
				UnitPrice:  item.Price,
				Quantity:   l.Quantity,
			})
			priced = append(priced, pricedLine{unitPrice: item.Price, quantity: l.Quantity})
		}
		order.Total = lineSum(priced)

		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Model(&table).Update("status", models.TableStatusOccupied).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Advance moves an order one step forward. There is deliberately no way to
// set an arbitrary status: illegal jumps cannot be expressed.
func (s *OrderService) Advance(hotelID, orderID uint) (models.Order, error) {
	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Lines").Where("hotel_id = ?", hotelID).First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}

		next, ok := models.NextOrderStatus(order.Status)
		if !ok {
			return apperrors.ErrInvalidTransition
		}

		// Guarded update: a concurrent advance of the same order loses.
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, order.Status).
			Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrInvalidTransition
		}
		order.Status = next
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *OrderService) Get(hotelID, orderID uint) (models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Lines").Preload("Table").Where("hotel_id = ?", hotelID).First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, apperrors.ErrNotFound
		}
		return models.Order{}, err
	}
	return order, nil
}

func (s *OrderService) List(hotelID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("Lines").Preload("Table").
		Where("hotel_id = ?", hotelID).Order("id").Find(&orders).Error
	return orders, err
}

// ListKitchen returns the orders the kitchen display shows: everything not
// yet served or paid.
func (s *OrderService) ListKitchen(hotelID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("Lines").Preload("Table").
		Where("hotel_id = ? AND status IN ?", hotelID,
			[]string{models.OrderStatusNew, models.OrderStatusPreparing, models.OrderStatusReady}).
		Order("id").Find(&orders).Error
	return orders, err
}
