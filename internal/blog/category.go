package blog

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/models"
	"mealmate/internal/store"
)

type CategoryStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.BlogCategory, error)
	FindBySlug(ctx context.Context, slug string) (models.BlogCategory, error)
	List(ctx context.Context, q store.ListQuery) ([]models.BlogCategory, int64, error)
	SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error)
	Insert(ctx context.Context, category *models.BlogCategory) error
	Replace(ctx context.Context, category models.BlogCategory) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

type CategoryInput struct {
	Name        string
	Description string
}

type Categories struct {
	categories CategoryStore
	now        func() time.Time
}

func NewCategories(categories CategoryStore) *Categories {
	return &Categories{categories: categories, now: time.Now}
}

func (c *Categories) Create(ctx context.Context, in CategoryInput) (models.BlogCategory, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.BlogCategory{}, &ValidationError{Fields: map[string]string{"name": "name is required"}}
	}

	now := c.now()
	cat := models.BlogCategory{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	catSlug, err := uniqueSlug(ctx, name, "category", primitive.NilObjectID, c.categories.SlugExists)
	if err != nil {
		return models.BlogCategory{}, err
	}
	cat.Slug = catSlug

	if err := c.categories.Insert(ctx, &cat); err != nil {
		return models.BlogCategory{}, err
	}
	return cat, nil
}

func (c *Categories) Update(ctx context.Context, id primitive.ObjectID, in CategoryInput) (models.BlogCategory, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.BlogCategory{}, &ValidationError{Fields: map[string]string{"name": "name is required"}}
	}

	cat, err := c.Get(ctx, id)
	if err != nil {
		return models.BlogCategory{}, err
	}

	if cat.Name != name {
		catSlug, err := uniqueSlug(ctx, name, "category", cat.ID, c.categories.SlugExists)
		if err != nil {
			return models.BlogCategory{}, err
		}
		cat.Slug = catSlug
	}
	cat.Name = name
	cat.Description = strings.TrimSpace(in.Description)
	cat.UpdatedAt = c.now()

	if err := c.categories.Replace(ctx, cat); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.BlogCategory{}, ErrCategoryNotFound
		}
		return models.BlogCategory{}, err
	}
	return cat, nil
}

func (c *Categories) Get(ctx context.Context, id primitive.ObjectID) (models.BlogCategory, error) {
	cat, err := c.categories.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.BlogCategory{}, ErrCategoryNotFound
	}
	return cat, err
}

func (c *Categories) GetBySlug(ctx context.Context, catSlug string) (models.BlogCategory, error) {
	cat, err := c.categories.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(catSlug)))
	if errors.Is(err, store.ErrNotFound) {
		return models.BlogCategory{}, ErrCategoryNotFound
	}
	return cat, err
}

func (c *Categories) List(ctx context.Context, q store.ListQuery) ([]models.BlogCategory, int64, error) {
	return c.categories.List(ctx, q)
}

func (c *Categories) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := c.categories.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

func (c *Categories) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoIDs
	}
	return c.categories.DeleteMany(ctx, ids)
}
