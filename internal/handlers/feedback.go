package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/feedback"
)

type FeedbackRequest struct {
	Recipe  string `json:"recipe" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func CreateFeedback(svc FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /feedback"
		defer handlePanic(c, route)

		principal, ok := requirePrincipal(c, route)
		if !ok {
			return
		}
		var req FeedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}
		recipeID, err := primitive.ObjectIDFromHex(req.Recipe)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid recipe")
			return
		}

		fb, rating, err := svc.Create(c.Request.Context(), principal, feedback.Input{
			Recipe:  recipeID,
			Rating:  req.Rating,
			Comment: req.Comment,
		})
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"feedback": fb, "recipeRating": rating})
	}
}

func GetRecipeFeedback(svc FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /feedback/:recipeId"
		defer handlePanic(c, route)

		recipeID, ok := parseIDParam(c, route, "recipeId")
		if !ok {
			return
		}
		items, err := svc.ListByRecipe(c.Request.Context(), recipeID)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
