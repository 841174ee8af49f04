package models

import "time"

type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CustomerID   uint      `json:"customer_id" gorm:"not null"`
	Customer     Customer  `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null"`
	Rating       int       `json:"rating" gorm:"not null"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Address struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"not null"`
	Line1      string    `json:"line1" gorm:"not null"`
	City       string    `json:"city"`
	Zip        string    `json:"zip"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
