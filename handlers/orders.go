package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodhub-api/apperr"
	"foodhub-api/middleware"
	"foodhub-api/models"
	"foodhub-api/orders"
)

// PlaceOrder creates a new order atomically with its line items. The
// customer id is stamped from the verified token.
func PlaceOrder(c *gin.Context) {
	var in orders.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apperr.Respond(c, apperr.New(apperr.Validation, err.Error()))
		return
	}

	orderID, err := orders.Create(middleware.DB(c), middleware.GetSubjectID(c), in)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Order placed successfully",
		"order_id": orderID,
	})
}

// GetMyOrders returns all orders for the logged-in customer.
func GetMyOrders(c *gin.Context) {
	var list []models.Order
	middleware.DB(c).Preload("Lines.Food").Preload("Restaurant").
		Where("customer_id = ?", middleware.GetSubjectID(c)).
		Order("created_at desc").
		Find(&list)
	c.JSON(http.StatusOK, gin.H{"count": len(list), "orders": list})
}

// GetOrderDetail returns one order with its lines, owner only.
func GetOrderDetail(c *gin.Context) {
	var order models.Order
	err := middleware.DB(c).Preload("Lines.Food").Preload("Restaurant").
		First(&order, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, apperr.New(apperr.NotFound, "Order not found"))
		} else {
			apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to load order", err))
		}
		return
	}
	if order.CustomerID != middleware.GetSubjectID(c) {
		apperr.Respond(c, apperr.New(apperr.Forbidden, "This order does not belong to you"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
