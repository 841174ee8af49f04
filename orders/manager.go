// Package orders holds the one genuinely transactional write path: creating
// an order header together with its line items as a single atomic unit.
package orders

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"foodhub-api/apperr"
	"foodhub-api/models"
)

type LineInput struct {
	FoodID   uint `json:"food_id"`
	Quantity int  `json:"quantity"`
}

// CreateInput is the order-creation payload. Pointer fields distinguish
// "absent" from zero so validation can name every missing field.
type CreateInput struct {
	RestaurantID    *uint       `json:"restaurant_id"`
	Items           []LineInput `json:"items"`
	PriceTotal      *float64    `json:"price_total"`
	AdditionalCosts float64     `json:"additional_costs"`
}

// Create persists an order header and its lines inside one transaction.
// The customer id comes from the verified token, never from the body. On
// any line failure everything, header included, is rolled back: no reader
// may ever observe a header with zero lines or a partial line set.
//
// PriceTotal is stored as supplied; this layer does not recompute it from
// line prices, and callers that need that invariant must enforce it
// themselves.
func Create(dbh *gorm.DB, customerID uint, in CreateInput) (uint, error) {
	var missing []string
	if in.RestaurantID == nil {
		missing = append(missing, "restaurant_id")
	}
	if len(in.Items) == 0 {
		missing = append(missing, "items")
	}
	if in.PriceTotal == nil {
		missing = append(missing, "price_total")
	}
	if len(missing) > 0 {
		return 0, apperr.MissingFields(missing...)
	}
	for _, it := range in.Items {
		if it.FoodID == 0 || it.Quantity < 1 {
			return 0, apperr.New(apperr.Validation, "each item needs a food_id and a quantity of at least 1")
		}
	}

	var restaurant models.Restaurant
	if err := dbh.First(&restaurant, *in.RestaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.New(apperr.NotFound, "Restaurant not found")
		}
		return 0, apperr.Wrap(apperr.Internal, "Failed to place order", err)
	}

	var order models.Order
	err := dbh.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			CustomerID:      customerID,
			RestaurantID:    restaurant.ID,
			PriceTotal:      *in.PriceTotal,
			AdditionalCosts: in.AdditionalCosts,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("order header: %w", err)
		}
		for _, it := range in.Items {
			var food models.Food
			if err := tx.Where("id = ? AND restaurant_id = ?", it.FoodID, restaurant.ID).
				First(&food).Error; err != nil {
				return fmt.Errorf("food %d: %w", it.FoodID, err)
			}
			line := models.OrderLine{
				OrderID:  order.ID,
				FoodID:   food.ID,
				Quantity: it.Quantity,
			}
			if err := tx.Create(&line).Error; err != nil {
				return fmt.Errorf("order line for food %d: %w", it.FoodID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, apperr.Wrap(apperr.TxAborted, "Failed to place order", err)
	}
	return order.ID, nil
}
