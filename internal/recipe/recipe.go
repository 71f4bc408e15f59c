// Package recipe manages the recipe catalogue.
package recipe

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/models"
	"mealmate/internal/slug"
	"mealmate/internal/store"
)

var ErrNotFound = errors.New("recipe not found")

// ValidationError carries the failing field names and reasons.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "missing or invalid fields: " + strings.Join(names, ", ")
}

func (e *ValidationError) FieldErrors() map[string]string { return e.Fields }

type Store interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Recipe, error)
	ViewBySlug(ctx context.Context, slug string) (models.Recipe, error)
	List(ctx context.Context, q store.ListQuery) ([]models.Recipe, int64, error)
	SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error)
	Insert(ctx context.Context, recipe *models.Recipe) error
	Replace(ctx context.Context, recipe models.Recipe) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Input struct {
	Name        string
	Description string
	Image       string
	PrepTime    int
	CookTime    int
	TotalTime   int
	Servings    int
	Ingredients []models.Ingredient
	Steps       []string
	Calories    float64
	Nutrition   models.Nutrition
	Tags        []string
}

func (in Input) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		fields["description"] = "description is required"
	}
	if in.PrepTime < 0 {
		fields["prepTime"] = "prepTime cannot be negative"
	}
	if in.CookTime < 0 {
		fields["cookTime"] = "cookTime cannot be negative"
	}
	if in.Servings < 1 {
		fields["servings"] = "servings must be a positive integer"
	}
	if in.Calories < 0 {
		fields["calories"] = "calories cannot be negative"
	}
	if in.Nutrition.Protein < 0 || in.Nutrition.Fat < 0 || in.Nutrition.Carbs < 0 {
		fields["nutrition"] = "nutrition values cannot be negative"
	}
	for i, ing := range in.Ingredients {
		if strings.TrimSpace(ing.Name) == "" || strings.TrimSpace(ing.Quantity) == "" {
			fields["ingredients"] = fmt.Sprintf("ingredient %d needs a name and quantity", i+1)
			break
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

type Service struct {
	recipes Store
	now     func() time.Time
}

func NewService(recipes Store) *Service {
	return &Service{recipes: recipes, now: time.Now}
}

func (s *Service) apply(r *models.Recipe, in Input) {
	r.Name = strings.TrimSpace(in.Name)
	r.Description = strings.TrimSpace(in.Description)
	r.Image = strings.TrimSpace(in.Image)
	r.PrepTime = in.PrepTime
	r.CookTime = in.CookTime
	r.TotalTime = in.TotalTime
	if r.TotalTime <= 0 {
		r.TotalTime = in.PrepTime + in.CookTime
	}
	r.Servings = in.Servings
	r.Ingredients = in.Ingredients
	if r.Ingredients == nil {
		r.Ingredients = []models.Ingredient{}
	}
	r.Steps = in.Steps
	if r.Steps == nil {
		r.Steps = []string{}
	}
	r.Calories = in.Calories
	r.Nutrition = in.Nutrition
	r.Tags = models.NormalizeStringList(in.Tags)
	r.UpdatedAt = s.now()
}

func (s *Service) Create(ctx context.Context, in Input) (models.Recipe, error) {
	if err := in.Validate(); err != nil {
		return models.Recipe{}, err
	}

	var r models.Recipe
	s.apply(&r, in)
	r.CreatedAt = r.UpdatedAt

	recipeSlug, err := s.uniqueSlug(ctx, r.Name, primitive.NilObjectID)
	if err != nil {
		return models.Recipe{}, err
	}
	r.Slug = recipeSlug

	if err := s.recipes.Insert(ctx, &r); err != nil {
		return models.Recipe{}, err
	}
	logrus.WithFields(logrus.Fields{"area": "RECIPE", "id": r.ID.Hex(), "slug": r.Slug}).Info("recipe created")
	return r, nil
}

// Update replaces the editable fields. Rating and views are derived and are
// kept as stored.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, in Input) (models.Recipe, error) {
	if err := in.Validate(); err != nil {
		return models.Recipe{}, err
	}

	r, err := s.Get(ctx, id)
	if err != nil {
		return models.Recipe{}, err
	}

	oldName := r.Name
	s.apply(&r, in)
	if r.Name != oldName {
		recipeSlug, err := s.uniqueSlug(ctx, r.Name, r.ID)
		if err != nil {
			return models.Recipe{}, err
		}
		r.Slug = recipeSlug
	}

	if err := s.recipes.Replace(ctx, r); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Recipe{}, ErrNotFound
		}
		return models.Recipe{}, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.recipes.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (models.Recipe, error) {
	r, err := s.recipes.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Recipe{}, ErrNotFound
	}
	return r, err
}

// GetBySlug returns the recipe and counts a view.
func (s *Service) GetBySlug(ctx context.Context, recipeSlug string) (models.Recipe, error) {
	r, err := s.recipes.ViewBySlug(ctx, strings.ToLower(strings.TrimSpace(recipeSlug)))
	if errors.Is(err, store.ErrNotFound) {
		return models.Recipe{}, ErrNotFound
	}
	return r, err
}

func (s *Service) List(ctx context.Context, q store.ListQuery) ([]models.Recipe, int64, error) {
	return s.recipes.List(ctx, q)
}

func (s *Service) uniqueSlug(ctx context.Context, name string, exclude primitive.ObjectID) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "recipe"
	}
	return slug.Unique(ctx, base, func(ctx context.Context, candidate string) (bool, error) {
		return s.recipes.SlugExists(ctx, candidate, exclude)
	})
}
