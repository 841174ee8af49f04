package models

import "time"

type Restaurant struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OwnerID     uint            `json:"owner_id" gorm:"not null"`
	Owner       RestaurantOwner `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Cuisine     string          `json:"cuisine"`
	PriceRange  string          `json:"price_range"`
	Rating      float64         `json:"rating" gorm:"default:0"`
	Foods       []Food          `json:"foods,omitempty" gorm:"foreignKey:RestaurantID"`
	Photos      []Photo         `json:"photos,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Food struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Photo is a restaurant-owned image reference. The binary itself lives in
// object storage under Key; this layer only tracks ownership.
type Photo struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null"`
	Key          string    `json:"key" gorm:"uniqueIndex;not null"`
	Caption      string    `json:"caption"`
	CreatedAt    time.Time `json:"created_at"`
}
