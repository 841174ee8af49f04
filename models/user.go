package models

import "time"

// Role defines the access classes in the system. A role governs both which
// endpoints a caller may reach and which database credential set is bound
// for the request.
type Role string

const (
	RoleGuest      Role = "guest"
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleAdmin      Role = "admin"

	// RoleAuthenticator is the elevated role bound only for the signup and
	// login paths. It is never embedded in a token; it exists so identity
	// creation can insert principal rows before any token is held.
	RoleAuthenticator Role = "authenticator"
)

// SessionRoles lists every role that needs its own database credential set.
var SessionRoles = []Role{
	RoleGuest,
	RoleCustomer,
	RoleRestaurant,
	RoleAdmin,
	RoleAuthenticator,
}

// TokenRole reports whether r may appear inside an issued session token.
func (r Role) TokenRole() bool {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleAdmin:
		return true
	}
	return false
}

// Customer is a principal who places orders, writes reviews and keeps
// delivery addresses.
type Customer struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	DateOfBirth  string    `json:"date_of_birth"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RestaurantOwner is a principal who operates one or more restaurants.
// Usernames and emails must be unique across Customer and RestaurantOwner
// combined; the signup handler enforces the cross-table part.
type RestaurantOwner struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
