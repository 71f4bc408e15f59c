// Package menu composes named, typed collections of recipes and enforces who
// may change them.
package menu

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/auth"
	"mealmate/internal/models"
	"mealmate/internal/slug"
	"mealmate/internal/store"
)

type Store interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Menu, error)
	List(ctx context.Context, q store.ListQuery) ([]models.Menu, int64, error)
	SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error)
	Insert(ctx context.Context, menu *models.Menu) error
	Replace(ctx context.Context, menu models.Menu) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID, owner *primitive.ObjectID) (int64, error)
}

type RecipeFinder interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Recipe, error)
}

type CreatorFinder interface {
	Creators(ctx context.Context, accountIDs []primitive.ObjectID) (map[primitive.ObjectID]store.Creator, error)
}

// RecipeInput is one requested recipe. Servings below one fall back to one.
type RecipeInput struct {
	Recipe   primitive.ObjectID
	Servings int
}

// Input is the fully typed create/update payload.
type Input struct {
	Name        string
	Description string
	Type        string
	Serves      int
	Tags        []string
	Recipes     []RecipeInput
}

// Validate checks every required field and reports all failures at once.
func (in Input) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(in.Name) == "" {
		verr.add("name", "name is required")
	}
	switch {
	case strings.TrimSpace(in.Type) == "":
		verr.add("type", "type is required")
	case !models.IsMealType(in.Type):
		verr.add("type", "type must be one of breakfast, lunch, dinner, snack")
	}
	if in.Serves < 1 {
		verr.add("serves", "serves must be a positive integer")
	}
	if len(in.Recipes) == 0 {
		verr.add("recipes", "at least one recipe is required")
	}
	for _, r := range in.Recipes {
		if r.Recipe.IsZero() {
			verr.add("recipes", "every recipe entry needs a recipe reference")
			break
		}
	}
	return verr.orNil()
}

func (in Input) recipes() []models.MenuRecipe {
	out := make([]models.MenuRecipe, 0, len(in.Recipes))
	for _, r := range in.Recipes {
		servings := r.Servings
		if servings < 1 {
			servings = 1
		}
		out = append(out, models.MenuRecipe{Recipe: r.Recipe, Servings: servings})
	}
	return out
}

type Composer struct {
	menus    Store
	recipes  RecipeFinder
	creators CreatorFinder
	now      func() time.Time
}

func NewComposer(menus Store, recipes RecipeFinder, creators CreatorFinder) *Composer {
	return &Composer{menus: menus, recipes: recipes, creators: creators, now: time.Now}
}

// CanEdit reports whether principal may mutate m: its creator, an admin, or
// anyone for a legacy menu without a creator.
func CanEdit(m models.Menu, principal auth.Principal) bool {
	if m.IsLegacy() || principal.IsAdmin() {
		return true
	}
	return *m.CreatedBy == principal.AccountID
}

func (c *Composer) Create(ctx context.Context, in Input, principal auth.Principal) (View, error) {
	if err := in.Validate(); err != nil {
		return View{}, err
	}

	name := strings.TrimSpace(in.Name)
	menuSlug, err := c.uniqueSlug(ctx, name, primitive.NilObjectID)
	if err != nil {
		return View{}, err
	}

	now := c.now()
	owner := principal.AccountID
	m := models.Menu{
		Name:        name,
		Slug:        menuSlug,
		Description: strings.TrimSpace(in.Description),
		Type:        in.Type,
		Serves:      in.Serves,
		Tags:        models.NormalizeStringList(in.Tags),
		Recipes:     in.recipes(),
		CreatedBy:   &owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.menus.Insert(ctx, &m); err != nil {
		return View{}, err
	}

	logrus.WithFields(logrus.Fields{"area": "MENU", "id": m.ID.Hex(), "slug": m.Slug}).Info("menu created")
	return c.resolveOne(ctx, m)
}

// Update replaces the editable fields of a menu. A legacy menu is adopted by
// the requester.
func (c *Composer) Update(ctx context.Context, id primitive.ObjectID, in Input, principal auth.Principal) (View, error) {
	if err := in.Validate(); err != nil {
		return View{}, err
	}

	m, err := c.find(ctx, id)
	if err != nil {
		return View{}, err
	}
	if !CanEdit(m, principal) {
		return View{}, ErrForbidden
	}

	name := strings.TrimSpace(in.Name)
	if name != m.Name {
		menuSlug, err := c.uniqueSlug(ctx, name, m.ID)
		if err != nil {
			return View{}, err
		}
		m.Slug = menuSlug
	}

	if m.IsLegacy() {
		owner := principal.AccountID
		m.CreatedBy = &owner
		logrus.WithFields(logrus.Fields{"area": "MENU", "id": m.ID.Hex(), "owner": owner.Hex()}).Info("legacy menu adopted")
	}

	m.Name = name
	m.Description = strings.TrimSpace(in.Description)
	m.Type = in.Type
	m.Serves = in.Serves
	m.Tags = models.NormalizeStringList(in.Tags)
	m.Recipes = in.recipes()
	m.UpdatedAt = c.now()

	if err := c.menus.Replace(ctx, m); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return View{}, ErrNotFound
		}
		return View{}, err
	}
	return c.resolveOne(ctx, m)
}

func (c *Composer) Delete(ctx context.Context, id primitive.ObjectID, principal auth.Principal) error {
	m, err := c.find(ctx, id)
	if err != nil {
		return err
	}
	if !CanEdit(m, principal) {
		return ErrForbidden
	}

	if err := c.menus.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// DeleteMany deletes the listed menus the principal may edit: its own and
// legacy ones, or any of them for an admin. Other ids are ignored.
func (c *Composer) DeleteMany(ctx context.Context, ids []primitive.ObjectID, principal auth.Principal) (int64, error) {
	if len(ids) == 0 {
		verr := &ValidationError{}
		verr.add("ids", "ids must be a non-empty list")
		return 0, verr
	}

	var owner *primitive.ObjectID
	if !principal.IsAdmin() {
		id := principal.AccountID
		owner = &id
	}
	return c.menus.DeleteMany(ctx, ids, owner)
}

func (c *Composer) Get(ctx context.Context, id primitive.ObjectID) (View, error) {
	m, err := c.find(ctx, id)
	if err != nil {
		return View{}, err
	}
	return c.resolveOne(ctx, m)
}

func (c *Composer) List(ctx context.Context, q store.ListQuery) ([]View, int64, error) {
	menus, total, err := c.menus.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	views, err := c.Resolve(ctx, menus)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (c *Composer) find(ctx context.Context, id primitive.ObjectID) (models.Menu, error) {
	m, err := c.menus.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Menu{}, ErrNotFound
	}
	return m, err
}

func (c *Composer) uniqueSlug(ctx context.Context, name string, exclude primitive.ObjectID) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "menu"
	}
	return slug.Unique(ctx, base, func(ctx context.Context, candidate string) (bool, error) {
		return c.menus.SlugExists(ctx, candidate, exclude)
	})
}
