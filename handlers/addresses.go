package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub-api/apperr"
	"foodhub-api/middleware"
	"foodhub-api/models"
)

type AddressRequest struct {
	Line1 string `json:"line1" binding:"required"`
	City  string `json:"city"`
	Zip   string `json:"zip"`
}

// ListAddresses returns the caller's delivery addresses.
func ListAddresses(c *gin.Context) {
	var list []models.Address
	middleware.DB(c).Where("customer_id = ?", middleware.GetSubjectID(c)).Find(&list)
	c.JSON(http.StatusOK, gin.H{"count": len(list), "addresses": list})
}

// CreateAddress adds a delivery address for the caller.
func CreateAddress(c *gin.Context) {
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.New(apperr.Validation, err.Error()))
		return
	}
	address := models.Address{
		CustomerID: middleware.GetSubjectID(c),
		Line1:      req.Line1,
		City:       req.City,
		Zip:        req.Zip,
	}
	if err := middleware.DB(c).Create(&address).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to create address", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Address created", "address": address})
}

// UpdateAddress edits an address, owner only.
func UpdateAddress(c *gin.Context) {
	address, err := ownedAddress(c, c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.New(apperr.Validation, err.Error()))
		return
	}
	allowed := map[string]bool{"line1": true, "city": true, "zip": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := middleware.DB(c).Model(address).Updates(update).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to update address", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address updated", "address": address})
}

// DeleteAddress removes an address, owner only.
func DeleteAddress(c *gin.Context) {
	address, err := ownedAddress(c, c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	if err := middleware.DB(c).Delete(address).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to delete address", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}
