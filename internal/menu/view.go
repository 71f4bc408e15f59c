package menu

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"mealmate/internal/models"
	"mealmate/internal/store"
)

// RecipeSummary is the slice of a recipe shown inside a menu.
type RecipeSummary struct {
	ID          primitive.ObjectID  `json:"id"`
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Description string              `json:"description"`
	Ingredients []models.Ingredient `json:"ingredients"`
	Steps       []string            `json:"steps"`
}

// ViewRecipe keeps the stored reference; Recipe is nil when the referenced
// recipe no longer exists.
type ViewRecipe struct {
	RecipeID primitive.ObjectID `json:"recipeId"`
	Recipe   *RecipeSummary     `json:"recipe"`
	Servings int                `json:"servings"`
}

// View is a menu with its references resolved for display.
type View struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description,omitempty"`
	Type        string             `json:"type"`
	Serves      int                `json:"serves"`
	Tags        models.StringList  `json:"tags"`
	Recipes     []ViewRecipe       `json:"recipes"`
	CreatedBy   *store.Creator     `json:"createdBy"`
	IsLegacy    bool               `json:"isLegacy"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func (c *Composer) resolveOne(ctx context.Context, m models.Menu) (View, error) {
	views, err := c.Resolve(ctx, []models.Menu{m})
	if err != nil {
		return View{}, err
	}
	return views[0], nil
}

// Resolve loads the recipes and creators referenced by menus. The two lookups
// run concurrently; each is a single batched query.
func (c *Composer) Resolve(ctx context.Context, menus []models.Menu) ([]View, error) {
	recipeIDs := make([]primitive.ObjectID, 0)
	creatorIDs := make([]primitive.ObjectID, 0)
	seenRecipe := map[primitive.ObjectID]struct{}{}
	seenCreator := map[primitive.ObjectID]struct{}{}
	for _, m := range menus {
		for _, r := range m.Recipes {
			if _, ok := seenRecipe[r.Recipe]; !ok {
				seenRecipe[r.Recipe] = struct{}{}
				recipeIDs = append(recipeIDs, r.Recipe)
			}
		}
		if !m.IsLegacy() {
			if _, ok := seenCreator[*m.CreatedBy]; !ok {
				seenCreator[*m.CreatedBy] = struct{}{}
				creatorIDs = append(creatorIDs, *m.CreatedBy)
			}
		}
	}

	var (
		recipes  []models.Recipe
		creators map[primitive.ObjectID]store.Creator
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recipes, err = c.recipes.FindByIDs(gctx, recipeIDs)
		return err
	})
	g.Go(func() error {
		var err error
		creators, err = c.creators.Creators(gctx, creatorIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}

	views := make([]View, 0, len(menus))
	for _, m := range menus {
		v := View{
			ID:          m.ID,
			Name:        m.Name,
			Slug:        m.Slug,
			Description: m.Description,
			Type:        m.Type,
			Serves:      m.Serves,
			Tags:        m.Tags,
			Recipes:     make([]ViewRecipe, 0, len(m.Recipes)),
			IsLegacy:    m.IsLegacy(),
			CreatedAt:   m.CreatedAt,
			UpdatedAt:   m.UpdatedAt,
		}
		if v.Tags == nil {
			v.Tags = models.StringList{}
		}
		for _, ref := range m.Recipes {
			vr := ViewRecipe{RecipeID: ref.Recipe, Servings: ref.Servings}
			if r, ok := byID[ref.Recipe]; ok {
				vr.Recipe = &RecipeSummary{
					ID:          r.ID,
					Name:        r.Name,
					Slug:        r.Slug,
					Description: r.Description,
					Ingredients: r.Ingredients,
					Steps:       r.Steps,
				}
			}
			v.Recipes = append(v.Recipes, vr)
		}
		if !m.IsLegacy() {
			if creator, ok := creators[*m.CreatedBy]; ok {
				v.CreatedBy = &creator
			} else {
				v.CreatedBy = &store.Creator{ID: *m.CreatedBy}
			}
		}
		views = append(views, v)
	}
	return views, nil
}
