package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/auth"
	"mealmate/internal/blog"
	"mealmate/internal/daily"
	"mealmate/internal/feedback"
	"mealmate/internal/menu"
	"mealmate/internal/models"
	"mealmate/internal/recipe"
	"mealmate/internal/store"
	"mealmate/internal/user"
)

type MenuService interface {
	Create(ctx context.Context, in menu.Input, principal auth.Principal) (menu.View, error)
	Update(ctx context.Context, id primitive.ObjectID, in menu.Input, principal auth.Principal) (menu.View, error)
	Delete(ctx context.Context, id primitive.ObjectID, principal auth.Principal) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID, principal auth.Principal) (int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (menu.View, error)
	List(ctx context.Context, q store.ListQuery) ([]menu.View, int64, error)
}

type DailyService interface {
	Create(ctx context.Context, principal auth.Principal, in daily.Input) (models.DailyMenu, error)
	Update(ctx context.Context, principal auth.Principal, in daily.Input) (models.DailyMenu, error)
	Get(ctx context.Context, principal auth.Principal, rawDate string) (models.DailyMenu, error)
}

type RecipeService interface {
	Create(ctx context.Context, in recipe.Input) (models.Recipe, error)
	Update(ctx context.Context, id primitive.ObjectID, in recipe.Input) (models.Recipe, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Get(ctx context.Context, id primitive.ObjectID) (models.Recipe, error)
	GetBySlug(ctx context.Context, slug string) (models.Recipe, error)
	List(ctx context.Context, q store.ListQuery) ([]models.Recipe, int64, error)
}

type FeedbackService interface {
	Create(ctx context.Context, principal auth.Principal, in feedback.Input) (models.Feedback, float64, error)
	ListByRecipe(ctx context.Context, recipe primitive.ObjectID) ([]models.Feedback, error)
}

type BlogService interface {
	Create(ctx context.Context, in blog.Input) (models.Blog, error)
	Update(ctx context.Context, id primitive.ObjectID, in blog.Input) (models.Blog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (models.Blog, error)
	List(ctx context.Context, q store.ListQuery) ([]models.Blog, int64, error)
}

type BlogCategoryService interface {
	Create(ctx context.Context, in blog.CategoryInput) (models.BlogCategory, error)
	Update(ctx context.Context, id primitive.ObjectID, in blog.CategoryInput) (models.BlogCategory, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (models.BlogCategory, error)
	GetBySlug(ctx context.Context, slug string) (models.BlogCategory, error)
	List(ctx context.Context, q store.ListQuery) ([]models.BlogCategory, int64, error)
}

type UserService interface {
	Profile(ctx context.Context, principal auth.Principal) (user.View, error)
	UpdateProfile(ctx context.Context, principal auth.Principal, in user.ProfileInput) (user.View, error)
	Get(ctx context.Context, accountID primitive.ObjectID) (user.View, error)
	List(ctx context.Context, role string, q store.ListQuery) ([]user.View, int64, error)
	Customers(ctx context.Context, q store.ListQuery) ([]user.View, int64, error)
}
