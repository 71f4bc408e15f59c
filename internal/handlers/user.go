package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealmate/internal/user"
)

// ProfileRequest is the body of PATCH /users/update-profile. Absent fields
// keep their stored value.
type ProfileRequest struct {
	FullName    *string  `json:"full_name"`
	Phone       *string  `json:"phone"`
	CalorieGoal *float64 `json:"calorieGoal"`
	ProteinGoal *float64 `json:"proteinGoal"`
	FatGoal     *float64 `json:"fatGoal"`
	CarbGoal    *float64 `json:"carbGoal"`
}

func (r ProfileRequest) toInput() user.ProfileInput {
	return user.ProfileInput{
		FullName:    r.FullName,
		Phone:       r.Phone,
		CalorieGoal: r.CalorieGoal,
		ProteinGoal: r.ProteinGoal,
		FatGoal:     r.FatGoal,
		CarbGoal:    r.CarbGoal,
	}
}

// GetProfile returns the caller's account and profile. Accounts created
// before profiles existed get the default nutrition goals.
func GetProfile(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /users/profile"
		defer handlePanic(c, route)

		principal, ok := requirePrincipal(c, route)
		if !ok {
			return
		}

		view, err := svc.Profile(c.Request.Context(), principal)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func UpdateProfile(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /users/update-profile"
		defer handlePanic(c, route)

		principal, ok := requirePrincipal(c, route)
		if !ok {
			return
		}

		var req ProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		view, err := svc.UpdateProfile(c.Request.Context(), principal, req.toInput())
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": view})
	}
}

func GetUsers(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /users"
		defer handlePanic(c, route)

		q, err := listQueryFromRequest(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		users, total, err := svc.List(c.Request.Context(), c.Query("role"), q)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, listResponse(users, total, q))
	}
}

func GetUser(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /users/:userId"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route, "userId")
		if !ok {
			return
		}

		view, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// ListCustomers pages through USER accounts, user.CustomerPageSize per page
// unless limit is given.
func ListCustomers(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /users/listCustomer"
		defer handlePanic(c, route)

		q, err := listQueryFromRequest(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		if c.Query("limit") == "" {
			q.Limit = user.CustomerPageSize
		}
		if q.Page < 1 {
			q.Page = 1
		}

		users, total, err := svc.Customers(c.Request.Context(), q)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"page":       q.Page,
			"limit":      q.Limit,
			"totalUsers": total,
			"totalPages": (total + q.Limit - 1) / q.Limit,
			"users":      users,
		})
	}
}
