package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodhub-api/apperr"
	"foodhub-api/middleware"
	"foodhub-api/models"
)

// ── Restaurant Management ────────────────────────────────────────────────────

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
	Cuisine     string `json:"cuisine"`
	PriceRange  string `json:"price_range"`
}

// CreateRestaurant lets a restaurant-role user create a restaurant. The
// owner id is stamped from the verified token and is immutable afterwards.
func CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.New(apperr.Validation, err.Error()))
		return
	}

	restaurant := models.Restaurant{
		OwnerID:     middleware.GetSubjectID(c),
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Cuisine:     req.Cuisine,
		PriceRange:  req.PriceRange,
	}
	if err := middleware.DB(c).Create(&restaurant).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to create restaurant", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// GetMyRestaurants lists the restaurants owned by the logged-in user.
func GetMyRestaurants(c *gin.Context) {
	var list []models.Restaurant
	middleware.DB(c).Preload("Foods").
		Where("owner_id = ?", middleware.GetSubjectID(c)).
		Find(&list)
	c.JSON(http.StatusOK, gin.H{"count": len(list), "restaurants": list})
}

// UpdateRestaurant updates restaurant details, owner only. Ownership cannot
// be reassigned: owner_id is not an updatable field.
func UpdateRestaurant(c *gin.Context) {
	restaurant, err := ownedRestaurant(c, c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.New(apperr.Validation, err.Error()))
		return
	}
	allowed := map[string]bool{"name": true, "description": true, "address": true, "cuisine": true, "price_range": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := middleware.DB(c).Model(restaurant).Updates(update).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to update restaurant", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// DeleteRestaurant removes a restaurant, owner only.
func DeleteRestaurant(c *gin.Context) {
	restaurant, err := ownedRestaurant(c, c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	if err := middleware.DB(c).Delete(restaurant).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to delete restaurant", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}

// ── Food Management ──────────────────────────────────────────────────────────

type CreateFoodRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

// AddFood adds a food item to one of the caller's restaurants.
func AddFood(c *gin.Context) {
	restaurant, err := ownedRestaurant(c, c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.New(apperr.Validation, err.Error()))
		return
	}

	food := models.Food{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
	}
	if err := middleware.DB(c).Create(&food).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to add food", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Food added", "food": food})
}

// UpdateFood updates a food item, owner only.
func UpdateFood(c *gin.Context) {
	food, err := ownedFood(c, c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.New(apperr.Validation, err.Error()))
		return
	}
	allowed := map[string]bool{"name": true, "description": true, "price": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := middleware.DB(c).Model(food).Updates(update).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to update food", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food updated", "food": food})
}

// DeleteFood removes a food item, owner only.
func DeleteFood(c *gin.Context) {
	food, err := ownedFood(c, c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	if err := middleware.DB(c).Delete(food).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to delete food", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food deleted"})
}

// ── Photo Management ─────────────────────────────────────────────────────────

type UploadPhotoRequest struct {
	Caption string `json:"caption"`
}

// UploadPhoto registers a photo against one of the caller's restaurants and
// allocates its object-storage key.
func UploadPhoto(c *gin.Context) {
	restaurant, err := ownedRestaurant(c, c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	var req UploadPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.New(apperr.Validation, err.Error()))
		return
	}

	photo := models.Photo{
		RestaurantID: restaurant.ID,
		Key:          uuid.NewString(),
		Caption:      req.Caption,
	}
	if err := middleware.DB(c).Create(&photo).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to upload photo", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Photo uploaded", "photo": photo})
}

// DeletePhoto removes a photo, owner only. Ownership goes through the
// restaurant in the path.
func DeletePhoto(c *gin.Context) {
	restaurant, err := ownedRestaurant(c, c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	var photo models.Photo
	if err := middleware.DB(c).
		Where("id = ? AND restaurant_id = ?", c.Param("photoId"), restaurant.ID).
		First(&photo).Error; err != nil {
		apperr.Respond(c, apperr.New(apperr.NotFound, "Photo not found"))
		return
	}
	if err := middleware.DB(c).Delete(&photo).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to delete photo", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted"})
}
