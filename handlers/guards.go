package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodhub-api/apperr"
	"foodhub-api/middleware"
	"foodhub-api/models"
)

// Ownership guards. Each loads the target resource and compares its owner
// column to the verified subject id, returning an explicit error variant
// instead of panicking: NotFound when the resource is absent (checked
// first), Forbidden when it belongs to someone else. These run only behind
// AuthRequired/RoleRequired, so existence is never leaked to
// unauthenticated callers.

func ownedRestaurant(c *gin.Context, id string) (*models.Restaurant, error) {
	dbh := middleware.DB(c)
	var restaurant models.Restaurant
	if err := dbh.First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Restaurant not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to load restaurant", err)
	}
	if restaurant.OwnerID != middleware.GetSubjectID(c) {
		return nil, apperr.New(apperr.Forbidden, "You don't own this restaurant")
	}
	return &restaurant, nil
}

// ownedFood resolves ownership through the food's restaurant.
func ownedFood(c *gin.Context, id string) (*models.Food, error) {
	dbh := middleware.DB(c)
	var food models.Food
	if err := dbh.First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Food not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to load food", err)
	}
	var restaurant models.Restaurant
	err := dbh.Where("id = ? AND owner_id = ?", food.RestaurantID, middleware.GetSubjectID(c)).
		First(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.Forbidden, "You don't own this food item")
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to load restaurant", err)
	}
	return &food, nil
}

func ownedReview(c *gin.Context, id string) (*models.Review, error) {
	dbh := middleware.DB(c)
	var review models.Review
	if err := dbh.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Review not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to load review", err)
	}
	if review.CustomerID != middleware.GetSubjectID(c) {
		return nil, apperr.New(apperr.Forbidden, "This review does not belong to you")
	}
	return &review, nil
}

func ownedAddress(c *gin.Context, id string) (*models.Address, error) {
	dbh := middleware.DB(c)
	var address models.Address
	if err := dbh.First(&address, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Address not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to load address", err)
	}
	if address.CustomerID != middleware.GetSubjectID(c) {
		return nil, apperr.New(apperr.Forbidden, "This address does not belong to you")
	}
	return &address, nil
}
