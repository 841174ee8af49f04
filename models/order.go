package models

import "time"

// Order is append-only: it is created once, atomically with its lines, and
// never updated afterwards.
type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	CustomerID      uint        `json:"customer_id" gorm:"not null"`
	Customer        Customer    `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	RestaurantID    uint        `json:"restaurant_id" gorm:"not null"`
	Restaurant      Restaurant  `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	PriceTotal      float64     `json:"price_total" gorm:"not null"`
	AdditionalCosts float64     `json:"additional_costs"`
	Lines           []OrderLine `json:"lines,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time   `json:"created_at"`
}

// OrderLine is a food-by-quantity row, composite-keyed by order and food.
// Lines exist only as part of their order's creation transaction.
type OrderLine struct {
	OrderID  uint `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	FoodID   uint `json:"food_id" gorm:"primaryKey;autoIncrement:false"`
	Food     Food `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	Quantity int  `json:"quantity" gorm:"not null"`
}
