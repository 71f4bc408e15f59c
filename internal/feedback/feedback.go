// Package feedback records recipe ratings and keeps each recipe's average
// rating current.
package feedback

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/auth"
	"mealmate/internal/models"
	"mealmate/internal/store"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrMissingRecipe  = errors.New("recipe is required")
	ErrRecipeNotFound = errors.New("recipe not found")
)

type Store interface {
	Insert(ctx context.Context, feedback *models.Feedback) error
	ListByRecipe(ctx context.Context, recipe primitive.ObjectID) ([]models.Feedback, error)
	AverageRating(ctx context.Context, recipe primitive.ObjectID) (float64, error)
}

type RecipeStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Recipe, error)
	SetRating(ctx context.Context, id primitive.ObjectID, rating float64) error
}

type Input struct {
	Recipe  primitive.ObjectID
	Rating  int
	Comment string
}

type Service struct {
	feedback Store
	recipes  RecipeStore
	now      func() time.Time
}

func NewService(feedback Store, recipes RecipeStore) *Service {
	return &Service{feedback: feedback, recipes: recipes, now: time.Now}
}

// Create stores the feedback and then refreshes the recipe rating. The
// returned rating is the recipe's new average.
func (s *Service) Create(ctx context.Context, principal auth.Principal, in Input) (models.Feedback, float64, error) {
	if in.Recipe.IsZero() {
		return models.Feedback{}, 0, ErrMissingRecipe
	}
	if in.Rating < 1 || in.Rating > 5 {
		return models.Feedback{}, 0, ErrInvalidRating
	}

	if _, err := s.recipes.FindByID(ctx, in.Recipe); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Feedback{}, 0, ErrRecipeNotFound
		}
		return models.Feedback{}, 0, err
	}

	fb := models.Feedback{
		Recipe:    in.Recipe,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		CreatedAt: s.now(),
	}
	if !principal.AccountID.IsZero() {
		user := principal.AccountID
		fb.User = &user
	}

	if err := s.feedback.Insert(ctx, &fb); err != nil {
		return models.Feedback{}, 0, err
	}

	avg, err := s.feedback.AverageRating(ctx, in.Recipe)
	if err != nil {
		return models.Feedback{}, 0, err
	}
	if err := s.recipes.SetRating(ctx, in.Recipe, avg); err != nil {
		return models.Feedback{}, 0, err
	}

	logrus.WithFields(logrus.Fields{
		"area":   "FEEDBACK",
		"recipe": in.Recipe.Hex(),
		"rating": avg,
	}).Info("recipe rating updated")
	return fb, avg, nil
}

func (s *Service) ListByRecipe(ctx context.Context, recipe primitive.ObjectID) ([]models.Feedback, error) {
	return s.feedback.ListByRecipe(ctx, recipe)
}
