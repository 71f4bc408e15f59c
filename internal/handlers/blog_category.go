package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealmate/internal/blog"
)

type BlogCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func GetBlogCategories(svc BlogCategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /blog-categories"
		defer handlePanic(c, route)

		q, err := listQueryFromRequest(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		categories, total, err := svc.List(c.Request.Context(), q)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, listResponse(categories, total, q))
	}
}

func GetBlogCategory(svc BlogCategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /blog-categories/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route, "id")
		if !ok {
			return
		}
		cat, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

func GetBlogCategoryBySlug(svc BlogCategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /blog-categories/:slug/by-slug"
		defer handlePanic(c, route)

		cat, err := svc.GetBySlug(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

func CreateBlogCategory(svc BlogCategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /blog-categories"
		defer handlePanic(c, route)

		var req BlogCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}
		cat, err := svc.Create(c.Request.Context(), blog.CategoryInput{Name: req.Name, Description: req.Description})
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusCreated, cat)
	}
}

func UpdateBlogCategory(svc BlogCategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /blog-categories/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route, "id")
		if !ok {
			return
		}
		var req BlogCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}
		cat, err := svc.Update(c.Request.Context(), id, blog.CategoryInput{Name: req.Name, Description: req.Description})
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

func DeleteBlogCategory(svc BlogCategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /blog-categories/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
	}
}

func DeleteBlogCategories(svc BlogCategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /blog-categories"
		defer handlePanic(c, route)

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
		deleted, err := svc.DeleteMany(c.Request.Context(), ids)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	}
}
