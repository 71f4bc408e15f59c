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

type fakeBlogs map[primitive.ObjectID]models.Blog

func (f fakeBlogs) FindByID(_ context.Context, id primitive.ObjectID) (models.Blog, error) {
	b, ok := f[id]
	if !ok {
		return models.Blog{}, store.ErrNotFound
	}
	return b, nil
}

func (f fakeBlogs) ViewBySlug(_ context.Context, s string) (models.Blog, error) {
	for id, b := range f {
		if b.Slug == s {
			b.Views++
			f[id] = b
			return b, nil
		}
	}
	return models.Blog{}, store.ErrNotFound
}

func (f fakeBlogs) List(context.Context, store.ListQuery) ([]models.Blog, int64, error) {
	return nil, 0, nil
}

func (f fakeBlogs) SlugExists(_ context.Context, s string, exclude primitive.ObjectID) (bool, error) {
	for id, b := range f {
		if b.Slug == s && id != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeBlogs) Insert(_ context.Context, b *models.Blog) error {
	b.ID = primitive.NewObjectID()
	f[b.ID] = *b
	return nil
}

func (f fakeBlogs) Replace(_ context.Context, b models.Blog) error {
	f[b.ID] = b
	return nil
}

func (f fakeBlogs) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f[id]; !ok {
		return store.ErrNotFound
	}
	delete(f, id)
	return nil
}

func (f fakeBlogs) DeleteMany(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := f[id]; ok {
			delete(f, id)
			n++
		}
	}
	return n, nil
}

func postInput(title string) Input {
	return Input{
		Category: "nutrition",
		Title:    title,
		Summary:  "short",
		Date:     "2026-10-15",
		Sections: []models.BlogSection{{Heading: "Intro", Text: "body"}},
	}
}

func TestBlogCreateSlugs(t *testing.T) {
	svc := NewService(fakeBlogs{})
	ctx := context.Background()

	first, err := svc.Create(ctx, postInput("Ăn sáng lành mạnh"))
	require.NoError(t, err)
	assert.Equal(t, "an-sang-lanh-manh", first.Slug)

	second, err := svc.Create(ctx, postInput("Ăn sáng lành mạnh!"))
	require.NoError(t, err)
	assert.Equal(t, "an-sang-lanh-manh-1", second.Slug)
}

func TestBlogValidation(t *testing.T) {
	svc := NewService(fakeBlogs{})

	_, err := svc.Create(context.Background(), Input{Title: "x"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "category")
	assert.Contains(t, verr.Fields, "summary")
	assert.Contains(t, verr.Fields, "date")
	assert.Contains(t, verr.Fields, "sections")
	assert.NotContains(t, verr.Fields, "title")
}

func TestBlogViewsAndDelete(t *testing.T) {
	blogs := fakeBlogs{}
	svc := NewService(blogs)
	ctx := context.Background()

	a, err := svc.Create(ctx, postInput("Protein 101"))
	require.NoError(t, err)
	b, err := svc.Create(ctx, postInput("Carbs 101"))
	require.NoError(t, err)

	viewed, err := svc.GetBySlug(ctx, "protein-101")
	require.NoError(t, err)
	assert.EqualValues(t, 1, viewed.Views)

	_, err = svc.DeleteMany(ctx, nil)
	assert.ErrorIs(t, err, ErrNoIDs)

	n, err := svc.DeleteMany(ctx, []primitive.ObjectID{a.ID, b.ID, primitive.NewObjectID()})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = svc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogUpdateKeepsSlugWhenTitleUnchanged(t *testing.T) {
	svc := NewService(fakeBlogs{})
	ctx := context.Background()

	created, err := svc.Create(ctx, postInput("Meal prep"))
	require.NoError(t, err)

	in := postInput("Meal prep")
	in.Summary = "updated"
	updated, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, "updated", updated.Summary)
}
