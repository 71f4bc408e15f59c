package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealmate/internal/daily"
	"mealmate/internal/models"
)

// DailyMenuRequest leaves both fields optional so the service can report
// missing ones with its own message.
type DailyMenuRequest struct {
	Date  string        `json:"date"`
	Meals *models.Meals `json:"meals"`
}

func bindDailyInput(c *gin.Context, route string) (daily.Input, bool) {
	var req DailyMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, route, err)
		return daily.Input{}, false
	}
	return daily.Input{Date: req.Date, Meals: req.Meals}, true
}

func CreateDailyMenu(svc DailyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /daily/create"
		defer handlePanic(c, route)

		principal, ok := requirePrincipal(c, route)
		if !ok {
			return
		}
		in, ok := bindDailyInput(c, route)
		if !ok {
			return
		}

		dm, err := svc.Create(c.Request.Context(), principal, in)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusCreated, dm)
	}
}

func UpdateDailyMenu(svc DailyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /daily/update"
		defer handlePanic(c, route)

		principal, ok := requirePrincipal(c, route)
		if !ok {
			return
		}
		in, ok := bindDailyInput(c, route)
		if !ok {
			return
		}

		dm, err := svc.Update(c.Request.Context(), principal, in)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, dm)
	}
}

func GetDailyMenu(svc DailyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /daily"
		defer handlePanic(c, route)

		principal, ok := requirePrincipal(c, route)
		if !ok {
			return
		}

		dm, err := svc.Get(c.Request.Context(), principal, c.Query("date"))
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, dm)
	}
}
