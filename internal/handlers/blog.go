package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealmate/internal/blog"
	"mealmate/internal/models"
)

type BlogRequest struct {
	Category   string               `json:"category" binding:"required"`
	Title      string               `json:"title" binding:"required"`
	Summary    string               `json:"summary" binding:"required"`
	CoverImage string               `json:"coverImage"`
	Sections   []models.BlogSection `json:"sections" binding:"required,min=1"`
	Author     string               `json:"author"`
	Tags       models.StringList    `json:"tags"`
	Date       string               `json:"date" binding:"required"`
}

func (r BlogRequest) toInput() blog.Input {
	return blog.Input{
		Category:   r.Category,
		Title:      r.Title,
		Summary:    r.Summary,
		CoverImage: r.CoverImage,
		Sections:   r.Sections,
		Author:     r.Author,
		Tags:       r.Tags,
		Date:       r.Date,
	}
}

func GetBlogs(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /blogs"
		defer handlePanic(c, route)

		q, err := listQueryFromRequest(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		blogs, total, err := svc.List(c.Request.Context(), q)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, listResponse(blogs, total, q))
	}
}

func GetBlog(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /blogs/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route, "id")
		if !ok {
			return
		}
		b, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

func GetBlogBySlug(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /blogs/:slug/by-slug"
		defer handlePanic(c, route)

		b, err := svc.GetBySlug(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

func CreateBlog(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /blogs"
		defer handlePanic(c, route)

		var req BlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}
		b, err := svc.Create(c.Request.Context(), req.toInput())
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

func UpdateBlog(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /blogs/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route, "id")
		if !ok {
			return
		}
		var req BlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}
		b, err := svc.Update(c.Request.Context(), id, req.toInput())
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

func DeleteBlog(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /blogs/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, route, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "blog deleted"})
	}
}

func DeleteBlogs(svc BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /blogs"
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
