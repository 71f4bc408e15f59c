package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/models"
	"mealmate/internal/store"
)

type fakeStore map[primitive.ObjectID]models.Recipe

func (f fakeStore) FindByID(_ context.Context, id primitive.ObjectID) (models.Recipe, error) {
	r, ok := f[id]
	if !ok {
		return models.Recipe{}, store.ErrNotFound
	}
	return r, nil
}

func (f fakeStore) ViewBySlug(_ context.Context, s string) (models.Recipe, error) {
	for id, r := range f {
		if r.Slug == s {
			r.Views++
			f[id] = r
			return r, nil
		}
	}
	return models.Recipe{}, store.ErrNotFound
}

func (f fakeStore) List(_ context.Context, _ store.ListQuery) ([]models.Recipe, int64, error) {
	out := make([]models.Recipe, 0, len(f))
	for _, r := range f {
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f fakeStore) SlugExists(_ context.Context, s string, exclude primitive.ObjectID) (bool, error) {
	for id, r := range f {
		if r.Slug == s && id != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeStore) Insert(_ context.Context, r *models.Recipe) error {
	r.ID = primitive.NewObjectID()
	f[r.ID] = *r
	return nil
}

func (f fakeStore) Replace(_ context.Context, r models.Recipe) error {
	if _, ok := f[r.ID]; !ok {
		return store.ErrNotFound
	}
	f[r.ID] = r
	return nil
}

func (f fakeStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f[id]; !ok {
		return store.ErrNotFound
	}
	delete(f, id)
	return nil
}

func phoInput() Input {
	return Input{
		Name:        "Phở Bò",
		Description: "Hanoi beef noodle soup",
		PrepTime:    20,
		CookTime:    180,
		Servings:    4,
		Ingredients: []models.Ingredient{{Name: "beef bones", Quantity: "1kg"}},
		Steps:       []string{"char onions", "simmer"},
		Calories:    450,
		Nutrition:   models.Nutrition{Protein: 30, Fat: 12, Carbs: 55},
		Tags:        []string{"soup"},
	}
}

func TestCreateDerivesSlugAndTotalTime(t *testing.T) {
	svc := NewService(fakeStore{})

	r, err := svc.Create(context.Background(), phoInput())
	require.NoError(t, err)
	assert.Equal(t, "pho-bo", r.Slug)
	assert.Equal(t, 200, r.TotalTime)

	again, err := svc.Create(context.Background(), phoInput())
	require.NoError(t, err)
	assert.Equal(t, "pho-bo-1", again.Slug)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(fakeStore{})

	_, err := svc.Create(context.Background(), Input{Servings: 0, Calories: -1})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"name", "description", "servings", "calories"} {
		assert.Contains(t, verr.Fields, field)
	}
}

func TestUpdateKeepsDerivedFields(t *testing.T) {
	fs := fakeStore{}
	svc := NewService(fs)
	ctx := context.Background()

	r, err := svc.Create(ctx, phoInput())
	require.NoError(t, err)
	stored := fs[r.ID]
	stored.Rating = 4.5
	stored.Views = 12
	fs[r.ID] = stored

	in := phoInput()
	in.Name = "Phở Gà"
	updated, err := svc.Update(ctx, r.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "pho-ga", updated.Slug)
	assert.Equal(t, 4.5, updated.Rating)
	assert.EqualValues(t, 12, updated.Views)
}

func TestGetBySlugCountsView(t *testing.T) {
	fs := fakeStore{}
	svc := NewService(fs)
	ctx := context.Background()

	_, err := svc.Create(ctx, phoInput())
	require.NoError(t, err)

	r, err := svc.GetBySlug(ctx, "PHO-BO")
	require.NoError(t, err)
	assert.EqualValues(t, 1, r.Views)

	_, err = svc.GetBySlug(ctx, "bun-cha")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissing(t *testing.T) {
	svc := NewService(fakeStore{})
	assert.ErrorIs(t, svc.Delete(context.Background(), primitive.NewObjectID()), ErrNotFound)
}
