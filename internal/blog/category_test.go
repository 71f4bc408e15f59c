package blog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/models"
	"mealmate/internal/store"
)

type fakeCategories map[primitive.ObjectID]models.BlogCategory

func (f fakeCategories) FindByID(_ context.Context, id primitive.ObjectID) (models.BlogCategory, error) {
	c, ok := f[id]
	if !ok {
		return models.BlogCategory{}, store.ErrNotFound
	}
	return c, nil
}

func (f fakeCategories) FindBySlug(_ context.Context, s string) (models.BlogCategory, error) {
	for _, c := range f {
		if c.Slug == s {
			return c, nil
		}
	}
	return models.BlogCategory{}, store.ErrNotFound
}

func (f fakeCategories) List(context.Context, store.ListQuery) ([]models.BlogCategory, int64, error) {
	return nil, 0, nil
}

func (f fakeCategories) SlugExists(_ context.Context, s string, exclude primitive.ObjectID) (bool, error) {
	for id, c := range f {
		if c.Slug == s && id != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeCategories) Insert(_ context.Context, c *models.BlogCategory) error {
	c.ID = primitive.NewObjectID()
	f[c.ID] = *c
	return nil
}

func (f fakeCategories) Replace(_ context.Context, c models.BlogCategory) error {
	f[c.ID] = c
	return nil
}

func (f fakeCategories) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f[id]; !ok {
		return store.ErrNotFound
	}
	delete(f, id)
	return nil
}

func (f fakeCategories) DeleteMany(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := f[id]; ok {
			delete(f, id)
			n++
		}
	}
	return n, nil
}

func TestCategoryLifecycle(t *testing.T) {
	cats := NewCategories(fakeCategories{})
	ctx := context.Background()

	_, err := cats.Create(ctx, CategoryInput{Name: "  "})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	created, err := cats.Create(ctx, CategoryInput{Name: "Dinh dưỡng"})
	require.NoError(t, err)
	assert.Equal(t, "dinh-duong", created.Slug)

	found, err := cats.GetBySlug(ctx, "dinh-duong")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	renamed, err := cats.Update(ctx, created.ID, CategoryInput{Name: "Sức khỏe"})
	require.NoError(t, err)
	assert.Equal(t, "suc-khoe", renamed.Slug)

	require.NoError(t, cats.Delete(ctx, created.ID))
	assert.ErrorIs(t, cats.Delete(ctx, created.ID), ErrCategoryNotFound)
}
