package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/auth"
	"mealmate/internal/blog"
	"mealmate/internal/daily"
	"mealmate/internal/feedback"
	"mealmate/internal/menu"
	"mealmate/internal/middleware"
	"mealmate/internal/recipe"
	"mealmate/internal/store"
	"mealmate/internal/user"
)

// fieldErrors is implemented by the per-domain validation errors.
type fieldErrors interface {
	error
	FieldErrors() map[string]string
}

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		middleware.Logger(c).WithField("route", route).Errorf("panic recovered: %v", r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	entry := middleware.Logger(c).WithFields(logrus.Fields{"route": route, "status": status})
	if status >= http.StatusInternalServerError {
		entry.Error(message)
	} else {
		entry.Info(message)
	}
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// respondValidationError reports binding failures and domain validation
// errors as 400 with one detail line per field.
func respondValidationError(c *gin.Context, route string, err error) {
	var details []string

	var validationErrors validator.ValidationErrors
	var domainErrors fieldErrors
	switch {
	case errors.As(err, &validationErrors):
		details = make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			field := lowerCamel(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				details = append(details, fmt.Sprintf("%s is required", field))
			case "oneof":
				details = append(details, fmt.Sprintf("%s must be one of %s", field, fieldError.Param()))
			default:
				details = append(details, fmt.Sprintf("%s is invalid", field))
			}
		}
	case errors.As(err, &domainErrors):
		fields := domainErrors.FieldErrors()
		details = make([]string, 0, len(fields))
		for _, reason := range fields {
			details = append(details, reason)
		}
	default:
		middleware.Logger(c).WithField("route", route).WithError(err).Info("invalid body")
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid body", "details": []string{err.Error()}})
		return
	}

	sort.Strings(details)
	middleware.Logger(c).WithFields(logrus.Fields{"route": route, "details": details}).Info("validation failed")
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "validation failed", "details": details})
}

// respondServiceError maps domain errors onto HTTP statuses.
func respondServiceError(c *gin.Context, route string, err error) {
	var domainErrors fieldErrors
	switch {
	case errors.As(err, &domainErrors):
		respondValidationError(c, route, err)
	case errors.Is(err, menu.ErrForbidden):
		respondWithError(c, http.StatusForbidden, route, err.Error())
	case errors.Is(err, menu.ErrNotFound),
		errors.Is(err, recipe.ErrNotFound),
		errors.Is(err, daily.ErrNotFound),
		errors.Is(err, blog.ErrNotFound),
		errors.Is(err, blog.ErrCategoryNotFound),
		errors.Is(err, feedback.ErrRecipeNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, store.ErrNotFound):
		respondWithError(c, http.StatusNotFound, route, err.Error())
	case errors.Is(err, daily.ErrMissingFields),
		errors.Is(err, daily.ErrInvalidDate),
		errors.Is(err, daily.ErrAlreadyExists),
		errors.Is(err, feedback.ErrInvalidRating),
		errors.Is(err, feedback.ErrMissingRecipe),
		errors.Is(err, blog.ErrNoIDs):
		respondWithError(c, http.StatusBadRequest, route, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		respondWithError(c, http.StatusGatewayTimeout, route, "request timed out")
	default:
		middleware.Logger(c).WithField("route", route).WithError(err).Error("unexpected error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

func requirePrincipal(c *gin.Context, route string) (auth.Principal, bool) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
	}
	return principal, ok
}

func parseIDParam(c *gin.Context, route, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param(name)))
	if err != nil {
		respondWithError(c, http.StatusBadRequest, route, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}

func parseObjectIDs(raw []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, value := range raw {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", value)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// IDsRequest is the body of the bulk delete endpoints.
type IDsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// Health reports whether the database answers a ping.
func Health(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /healthz"
		if err := ping(c.Request.Context()); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
