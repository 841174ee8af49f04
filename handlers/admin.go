package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub-api/middleware"
	"foodhub-api/models"
)

// AdminGetAllOrders returns all orders with a revenue summary — admin only.
func AdminGetAllOrders(c *gin.Context) {
	var list []models.Order
	query := middleware.DB(c).Preload("Lines.Food").Preload("Customer").Preload("Restaurant")

	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}

	query.Order("created_at desc").Find(&list)

	var totalRevenue float64
	for _, o := range list {
		totalRevenue += o.PriceTotal + o.AdditionalCosts
	}

	c.JSON(http.StatusOK, gin.H{
		"total_revenue": totalRevenue,
		"count":         len(list),
		"orders":        list,
	})
}

// AdminGetAllCustomers returns all customer accounts — admin only.
func AdminGetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	middleware.DB(c).Find(&customers)
	c.JSON(http.StatusOK, gin.H{"count": len(customers), "customers": customers})
}

// AdminGetAllRestaurants returns all restaurants with owners — admin only.
func AdminGetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	middleware.DB(c).Preload("Owner").Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}
