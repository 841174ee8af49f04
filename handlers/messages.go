package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodhub-api/apperr"
	"foodhub-api/middleware"
	"foodhub-api/models"
)

type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required"`
	Contents    string `json:"contents" binding:"required"`
}

// SendMessage creates a message from the caller to another customer. The
// sender id is stamped from the verified token.
func SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.New(apperr.Validation, err.Error()))
		return
	}

	senderID := middleware.GetSubjectID(c)
	if req.RecipientID == senderID {
		apperr.Respond(c, apperr.New(apperr.Validation, "Cannot send a message to yourself"))
		return
	}

	dbh := middleware.DB(c)
	var recipient models.Customer
	if err := dbh.First(&recipient, req.RecipientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, apperr.New(apperr.NotFound, "Recipient not found"))
			return
		}
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to send message", err))
		return
	}

	message := models.Message{
		SenderID:    senderID,
		RecipientID: recipient.ID,
		Contents:    req.Contents,
	}
	if err := dbh.Create(&message).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to send message", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": message})
}

// GetMyMessages returns every message the caller sent or received, oldest
// first so the client can thread conversations.
func GetMyMessages(c *gin.Context) {
	subjectID := middleware.GetSubjectID(c)
	var list []models.Message
	middleware.DB(c).Preload("Sender").Preload("Recipient").
		Where("sender_id = ? OR recipient_id = ?", subjectID, subjectID).
		Order("created_at asc").
		Find(&list)
	c.JSON(http.StatusOK, gin.H{"count": len(list), "messages": list})
}

// DeleteMessage removes a message, sender only. A recipient can read a
// message but never mutate it.
func DeleteMessage(c *gin.Context) {
	dbh := middleware.DB(c)
	var message models.Message
	if err := dbh.First(&message, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, apperr.New(apperr.NotFound, "Message not found"))
			return
		}
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to load message", err))
		return
	}
	if message.SenderID != middleware.GetSubjectID(c) {
		apperr.Respond(c, apperr.New(apperr.Forbidden, "This message does not belong to you"))
		return
	}
	if err := dbh.Delete(&message).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to delete message", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}

// LookupCustomer resolves a username to a customer id so a chat can be
// started. Requires an authenticated customer; this is not a public
// enumeration endpoint.
func LookupCustomer(c *gin.Context) {
	var customer models.Customer
	err := middleware.DB(c).First(&customer, "username = ?", c.Param("username")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, apperr.New(apperr.NotFound, "Customer not found"))
			return
		}
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to look up customer", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"customer_id": customer.ID,
		"username":    customer.Username,
	})
}
