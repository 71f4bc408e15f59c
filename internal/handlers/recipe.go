package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealmate/internal/models"
	"mealmate/internal/recipe"
)

// RecipeRequest uses pointers for the numeric fields that must be present
// even when zero.
type RecipeRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description" binding:"required"`
	Image       string              `json:"image"`
	PrepTime    *int                `json:"prepTime" binding:"required"`
	CookTime    *int                `json:"cookTime" binding:"required"`
	TotalTime   int                 `json:"totalTime"`
	Servings    int                 `json:"servings" binding:"required"`
	Ingredients []models.Ingredient `json:"ingredients"`
	Steps       []string            `json:"steps"`
	Calories    *float64            `json:"calories" binding:"required"`
	Nutrition   models.Nutrition    `json:"nutrition"`
	Tags        models.StringList   `json:"tags"`
}

func (r RecipeRequest) toInput() recipe.Input {
	return recipe.Input{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		PrepTime:    *r.PrepTime,
		CookTime:    *r.CookTime,
		TotalTime:   r.TotalTime,
		Servings:    r.Servings,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		Calories:    *r.Calories,
		Nutrition:   r.Nutrition,
		Tags:        r.Tags,
	}
}

func GetRecipes(svc RecipeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /recipes"
		defer handlePanic(c, route)

		q, err := listQueryFromRequest(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		recipes, total, err := svc.List(c.Request.Context(), q)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, listResponse(recipes, total, q))
	}
}

func GetRecipe(svc RecipeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /recipes/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route, "id")
		if !ok {
			return
		}
		r, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

func GetRecipeBySlug(svc RecipeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /recipes/:slug/by-slug"
		defer handlePanic(c, route)

		r, err := svc.GetBySlug(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

func CreateRecipe(svc RecipeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /recipes"
		defer handlePanic(c, route)

		var req RecipeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		r, err := svc.Create(c.Request.Context(), req.toInput())
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusCreated, r)
	}
}

func UpdateRecipe(svc RecipeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /recipes/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route, "id")
		if !ok {
			return
		}
		var req RecipeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		r, err := svc.Update(c.Request.Context(), id, req.toInput())
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

func DeleteRecipe(svc RecipeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /recipes/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
	}
}
