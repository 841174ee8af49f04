package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub-api/apperr"
	"foodhub-api/middleware"
	"foodhub-api/models"
)

// ListRestaurants returns all restaurants (public, read-only session).
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := middleware.DB(c)

	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine LIKE ?", "%"+cuisine+"%")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its foods.
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := middleware.DB(c).Preload("Foods").First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		apperr.Respond(c, apperr.New(apperr.NotFound, "Restaurant not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetFoods returns the food list for a restaurant (public).
func GetFoods(c *gin.Context) {
	dbh := middleware.DB(c)
	var restaurant models.Restaurant
	if err := dbh.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		apperr.Respond(c, apperr.New(apperr.NotFound, "Restaurant not found"))
		return
	}

	var foods []models.Food
	dbh.Where("restaurant_id = ?", restaurant.ID).Find(&foods)
	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(foods),
		"foods":      foods,
	})
}

// GetPhotos returns a restaurant's photos (public).
func GetPhotos(c *gin.Context) {
	dbh := middleware.DB(c)
	var restaurant models.Restaurant
	if err := dbh.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		apperr.Respond(c, apperr.New(apperr.NotFound, "Restaurant not found"))
		return
	}

	var photos []models.Photo
	dbh.Where("restaurant_id = ?", restaurant.ID).Find(&photos)
	c.JSON(http.StatusOK, gin.H{"count": len(photos), "photos": photos})
}

// GetReviews returns a restaurant's reviews (public).
func GetReviews(c *gin.Context) {
	dbh := middleware.DB(c)
	var restaurant models.Restaurant
	if err := dbh.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		apperr.Respond(c, apperr.New(apperr.NotFound, "Restaurant not found"))
		return
	}

	var reviews []models.Review
	dbh.Where("restaurant_id = ?", restaurant.ID).Order("created_at desc").Find(&reviews)
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}
