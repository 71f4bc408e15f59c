package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealmate/internal/menu"
	"mealmate/internal/models"
)

type MenuRecipeRequest struct {
	Recipe   string  `json:"recipe" binding:"required"`
	Servings flexInt `json:"servings"`
}

type MenuRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Type        string              `json:"type" binding:"required,oneof=breakfast lunch dinner snack"`
	Serves      flexInt             `json:"serves" binding:"required"`
	Tags        models.StringList   `json:"tags"`
	Recipes     []MenuRecipeRequest `json:"recipes" binding:"required,min=1,dive"`
}

// toInput converts the bound request into the composer's typed input.
// Recipe ids are checked here so the composer only sees real references.
func (r MenuRequest) toInput() (menu.Input, error) {
	recipes := make([]menu.RecipeInput, 0, len(r.Recipes))
	raw := make([]string, 0, len(r.Recipes))
	for _, item := range r.Recipes {
		raw = append(raw, item.Recipe)
	}
	ids, err := parseObjectIDs(raw)
	if err != nil {
		return menu.Input{}, err
	}
	for i, item := range r.Recipes {
		recipes = append(recipes, menu.RecipeInput{Recipe: ids[i], Servings: int(item.Servings)})
	}

	return menu.Input{
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Serves:      int(r.Serves),
		Tags:        r.Tags,
		Recipes:     recipes,
	}, nil
}

func bindMenuInput(c *gin.Context, route string) (menu.Input, bool) {
	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, route, err)
		return menu.Input{}, false
	}
	in, err := req.toInput()
	if err != nil {
		respondValidationError(c, route, err)
		return menu.Input{}, false
	}
	return in, true
}

func GetMenus(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /menus"
		defer handlePanic(c, route)

		q, err := listQueryFromRequest(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		views, total, err := svc.List(c.Request.Context(), q)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, listResponse(views, total, q))
	}
}

func GetMenu(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /menus/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route, "id")
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

func CreateMenu(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /menus"
		defer handlePanic(c, route)

		principal, ok := requirePrincipal(c, route)
		if !ok {
			return
		}
		in, ok := bindMenuInput(c, route)
		if !ok {
			return
		}

		view, err := svc.Create(c.Request.Context(), in, principal)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusCreated, view)
	}
}

func UpdateMenu(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /menus/:id"
		defer handlePanic(c, route)

		principal, ok := requirePrincipal(c, route)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, route, "id")
		if !ok {
			return
		}
		in, ok := bindMenuInput(c, route)
		if !ok {
			return
		}

		view, err := svc.Update(c.Request.Context(), id, in, principal)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func DeleteMenu(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /menus/:id"
		defer handlePanic(c, route)

		principal, ok := requirePrincipal(c, route)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, route, "id")
		if !ok {
			return
		}

		if err := svc.Delete(c.Request.Context(), id, principal); err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "menu deleted"})
	}
}

func DeleteMenus(svc MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /menus"
		defer handlePanic(c, route)

		principal, ok := requirePrincipal(c, route)
		if !ok {
			return
		}
		var req IDsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}
		ids, err := parseObjectIDs(req.IDs)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		deleted, err := svc.DeleteMany(c.Request.Context(), ids, principal)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	}
}
