package daily

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/auth"
	"mealmate/internal/models"
	"mealmate/internal/store"
)

type dayKey struct {
	user primitive.ObjectID
	date time.Time
}

type fakeStore struct {
	byKey map[dayKey]models.DailyMenu
}

func newFakeStore() *fakeStore {
	return &fakeStore{byKey: map[dayKey]models.DailyMenu{}}
}

func (f *fakeStore) FindByUserDate(_ context.Context, user primitive.ObjectID, date time.Time) (models.DailyMenu, error) {
	m, ok := f.byKey[dayKey{user, date}]
	if !ok {
		return models.DailyMenu{}, store.ErrNotFound
	}
	return m, nil
}

func (f *fakeStore) Insert(_ context.Context, m *models.DailyMenu) error {
	key := dayKey{m.User, m.Date}
	if _, ok := f.byKey[key]; ok {
		return store.ErrDuplicate
	}
	m.ID = primitive.NewObjectID()
	f.byKey[key] = *m
	return nil
}

func (f *fakeStore) Save(_ context.Context, m models.DailyMenu) error {
	key := dayKey{m.User, m.Date}
	if _, ok := f.byKey[key]; !ok {
		return store.ErrNotFound
	}
	f.byKey[key] = m
	return nil
}

type fakeRecipes map[primitive.ObjectID]models.Recipe

func (f fakeRecipes) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Recipe, error) {
	out := make([]models.Recipe, 0, len(ids))
	for _, id := range ids {
		if r, ok := f[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

type fixture struct {
	svc     *Service
	store   *fakeStore
	recipes fakeRecipes
	a, b    models.Recipe
	user    auth.Principal
}

func newFixture() fixture {
	a := models.Recipe{ID: primitive.NewObjectID(), Calories: 300, Nutrition: models.Nutrition{Protein: 20, Fat: 10, Carbs: 30}}
	b := models.Recipe{ID: primitive.NewObjectID(), Calories: 200, Nutrition: models.Nutrition{Protein: 10, Fat: 5, Carbs: 25}}
	recipes := fakeRecipes{a.ID: a, b.ID: b}
	fs := newFakeStore()
	return fixture{
		svc:     NewService(fs, recipes),
		store:   fs,
		recipes: recipes,
		a:       a,
		b:       b,
		user:    auth.Principal{AccountID: primitive.NewObjectID(), Role: models.RoleUser},
	}
}

func (f fixture) meals() *models.Meals {
	return &models.Meals{
		Breakfast: []models.MealEntry{{Recipe: f.a.ID, Quantity: 1}},
		Lunch:     []models.MealEntry{{Recipe: f.b.ID, Quantity: 2}},
	}
}

func TestCreateComputesTotals(t *testing.T) {
	f := newFixture()

	menu, err := f.svc.Create(context.Background(), f.user, Input{Date: "2026-10-15", Meals: f.meals()})
	require.NoError(t, err)
	assert.Equal(t, 700.0, menu.TotalCalories)
	assert.Equal(t, 40.0, menu.TotalProtein)
	assert.Equal(t, 20.0, menu.TotalFat)
	assert.Equal(t, 80.0, menu.TotalCarbs)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), menu.Date)
}

func TestCreateSecondMenuSameDayFails(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.user, Input{Date: "2026-10-15", Meals: f.meals()})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, f.user, Input{Date: "2026-10-15T18:30:00Z", Meals: &models.Meals{}})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	stored, err := f.store.FindByUserDate(ctx, f.user.AccountID, first.Date)
	require.NoError(t, err)
	assert.Equal(t, 700.0, stored.TotalCalories)
}

func TestCreateSameDayForOtherUserSucceeds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	other := auth.Principal{AccountID: primitive.NewObjectID()}

	_, err := f.svc.Create(ctx, f.user, Input{Date: "2026-10-15", Meals: f.meals()})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, other, Input{Date: "2026-10-15", Meals: f.meals()})
	assert.NoError(t, err)
}

func TestCreateRequiresDateAndMeals(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.user, Input{Meals: f.meals()})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = f.svc.Create(ctx, f.user, Input{Date: "2026-10-15"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = f.svc.Create(ctx, f.user, Input{Date: "15/10/2026", Meals: f.meals()})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateWithEmptyMealsHasZeroTotals(t *testing.T) {
	f := newFixture()

	menu, err := f.svc.Create(context.Background(), f.user, Input{Date: "2026-10-16", Meals: &models.Meals{}})
	require.NoError(t, err)
	assert.Zero(t, menu.TotalCalories)
	assert.Zero(t, menu.TotalCarbs)
}

func TestUpdateRecomputesAfterRecipeDeleted(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.user, Input{Date: "2026-10-15", Meals: f.meals()})
	require.NoError(t, err)

	delete(f.recipes, f.b.ID)
	menu, err := f.svc.Update(ctx, f.user, Input{Date: "2026-10-15", Meals: f.meals()})
	require.NoError(t, err)
	assert.Equal(t, 300.0, menu.TotalCalories)
	assert.Equal(t, 20.0, menu.TotalProtein)
	assert.Len(t, menu.Meals.Lunch, 1)

	stored, err := f.store.FindByUserDate(ctx, f.user.AccountID, menu.Date)
	require.NoError(t, err)
	assert.Equal(t, 300.0, stored.TotalCalories)
}

func TestUpdateMissingDayIsNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Update(context.Background(), f.user, Input{Date: "2026-01-01", Meals: f.meals()})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuantityDefaultsToOneOnSave(t *testing.T) {
	f := newFixture()
	menu, err := f.svc.Create(context.Background(), f.user, Input{
		Date:  "2026-10-17",
		Meals: &models.Meals{Snack: []models.MealEntry{{Recipe: f.a.ID}}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, menu.Meals.Snack[0].Quantity)
	assert.Equal(t, 300.0, menu.TotalCalories)
}

func TestGet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Get(ctx, f.user, "2026-10-15")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Create(ctx, f.user, Input{Date: "2026-10-15", Meals: f.meals()})
	require.NoError(t, err)

	menu, err := f.svc.Get(ctx, f.user, "2026-10-15")
	require.NoError(t, err)
	assert.Equal(t, 700.0, menu.TotalCalories)
}
