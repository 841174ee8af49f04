package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub-api/apperr"
	"foodhub-api/middleware"
	"foodhub-api/models"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview posts a review on a restaurant. The customer id comes from
// the verified token.
func CreateReview(c *gin.Context) {
	dbh := middleware.DB(c)
	var restaurant models.Restaurant
	if err := dbh.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		apperr.Respond(c, apperr.New(apperr.NotFound, "Restaurant not found"))
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.New(apperr.Validation, err.Error()))
		return
	}

	review := models.Review{
		CustomerID:   middleware.GetSubjectID(c),
		RestaurantID: restaurant.ID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := dbh.Create(&review).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to create review", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review created", "review": review})
}

// UpdateReview edits a review, owner only.
func UpdateReview(c *gin.Context) {
	review, err := ownedReview(c, c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.New(apperr.Validation, err.Error()))
		return
	}
	allowed := map[string]bool{"rating": true, "comment": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := middleware.DB(c).Model(review).Updates(update).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to update review", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated", "review": review})
}

// DeleteReview removes a review, owner only.
func DeleteReview(c *gin.Context) {
	review, err := ownedReview(c, c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	if err := middleware.DB(c).Delete(review).Error; err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.Internal, "Failed to delete review", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
