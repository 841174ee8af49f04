package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodhub-api/apperr"
	"foodhub-api/auth"
	"foodhub-api/config"
	"foodhub-api/middleware"
	"foodhub-api/models"
)

type SignupRequest struct {
	Role        models.Role `json:"role" binding:"required"`
	Username    string      `json:"username" binding:"required"`
	Email       string      `json:"email" binding:"required,email"`
	Password    string      `json:"password" binding:"required,min=6"`
	DateOfBirth string      `json:"date_of_birth"`
	Phone       string      `json:"phone"`
}

type LoginRequest struct {
	// Username accepts either the username or the email.
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup creates a new principal. Usernames and emails must be unique
// across customers and restaurant owners combined, so both tables are
// checked before either insert.
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.New(apperr.Validation, err.Error()))
		return
	}
	if req.Role != models.RoleCustomer && req.Role != models.RoleRestaurant {
		apperr.Respond(c, apperr.New(apperr.Validation, "Invalid role. Must be: customer or restaurant"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to create account", err))
		return
	}

	dbh := middleware.DB(c)
	var newID uint
	err = dbh.Transaction(func(tx *gorm.DB) error {
		taken, err := identifierTaken(tx, req.Username, req.Email)
		if err != nil {
			return err
		}
		if taken {
			return apperr.New(apperr.Conflict, "Username or email already exists")
		}
		switch req.Role {
		case models.RoleCustomer:
			customer := models.Customer{
				Username:     req.Username,
				Email:        req.Email,
				PasswordHash: string(hash),
				DateOfBirth:  req.DateOfBirth,
			}
			if err := tx.Create(&customer).Error; err != nil {
				return err
			}
			newID = customer.ID
		case models.RoleRestaurant:
			owner := models.RestaurantOwner{
				Username:     req.Username,
				Email:        req.Email,
				PasswordHash: string(hash),
				Phone:        req.Phone,
			}
			if err := tx.Create(&owner).Error; err != nil {
				return err
			}
			newID = owner.ID
		}
		return nil
	})
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			apperr.Respond(c, ae)
			return
		}
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to create account", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"id":      newID,
		"role":    req.Role,
	})
}

// identifierTaken reports whether username or email already exists in
// either principal table.
func identifierTaken(tx *gorm.DB, username, email string) (bool, error) {
	var count int64
	if err := tx.Model(&models.Customer{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := tx.Model(&models.RestaurantOwner{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Login authenticates by username-or-email against both principal tables
// and returns a signed token. Unknown principal and wrong password are
// logged distinctly but answered identically, so usernames cannot be
// enumerated.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.New(apperr.Validation, err.Error()))
		return
	}

	dbh := middleware.DB(c)
	invalid := apperr.New(apperr.AuthRequired, "Invalid credentials")

	var (
		id           uint
		role         models.Role
		passwordHash string
		profile      gin.H
	)

	var customer models.Customer
	err := dbh.Where("username = ? OR email = ?", req.Username, req.Username).
		First(&customer).Error
	switch {
	case err == nil:
		id, role, passwordHash = customer.ID, models.RoleCustomer, customer.PasswordHash
		profile = gin.H{"id": customer.ID, "username": customer.Username, "email": customer.Email, "role": role}
	case errors.Is(err, gorm.ErrRecordNotFound):
		var owner models.RestaurantOwner
		err = dbh.Where("username = ? OR email = ?", req.Username, req.Username).
			First(&owner).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("login failed: unknown principal %q", req.Username)
			apperr.Respond(c, invalid)
			return
		}
		if err != nil {
			apperr.Respond(c, apperr.Wrap(apperr.Internal, "Login failed", err))
			return
		}
		id, role, passwordHash = owner.ID, models.RoleRestaurant, owner.PasswordHash
		profile = gin.H{"id": owner.ID, "username": owner.Username, "email": owner.Email, "role": role}
	default:
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Login failed", err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		log.Printf("login failed: password mismatch for %s %d", role, id)
		apperr.Respond(c, invalid)
		return
	}

	token, err := auth.Issue(config.JWTSecret, id, role)
	if err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to generate token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    profile,
	})
}

// GetProfile returns the authenticated principal's profile.
func GetProfile(c *gin.Context) {
	dbh := middleware.DB(c)
	subjectID := middleware.GetSubjectID(c)

	switch middleware.GetRole(c) {
	case models.RoleCustomer:
		var customer models.Customer
		if err := dbh.First(&customer, subjectID).Error; err != nil {
			apperr.Respond(c, apperr.New(apperr.NotFound, "User not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": customer, "role": models.RoleCustomer})
	case models.RoleRestaurant:
		var owner models.RestaurantOwner
		if err := dbh.First(&owner, subjectID).Error; err != nil {
			apperr.Respond(c, apperr.New(apperr.NotFound, "User not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": owner, "role": models.RoleRestaurant})
	default:
		apperr.Respond(c, apperr.New(apperr.Forbidden, "No profile for this role"))
	}
}
