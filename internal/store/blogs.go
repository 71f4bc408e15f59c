package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mealmate/internal/models"
)

const (
	BlogsCollection          = "blogs"
	BlogCategoriesCollection = "blog_categories"
)

type Blogs struct {
	coll *mongo.Collection
}

func NewBlogs(db *mongo.Database) *Blogs {
	return &Blogs{coll: db.Collection(BlogsCollection)}
}

func (s *Blogs) FindByID(ctx context.Context, id primitive.ObjectID) (models.Blog, error) {
	var blog models.Blog
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	return blog, translate(err, "find blog")
}

func (s *Blogs) ViewBySlug(ctx context.Context, slug string) (models.Blog, error) {
	var blog models.Blog
	err := s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"slug": slug},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&blog)
	return blog, translate(err, "view blog")
}

func (s *Blogs) List(ctx context.Context, q ListQuery) ([]models.Blog, int64, error) {
	return listDocuments[models.Blog](ctx, s.coll, q.filter("title", "summary"), q.findOptions(), "list blogs")
}

func (s *Blogs) SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
	return slugTaken(ctx, s.coll, slug, exclude)
}

func (s *Blogs) Insert(ctx context.Context, blog *models.Blog) error {
	res, err := s.coll.InsertOne(ctx, blog)
	if err != nil {
		return translate(err, "insert blog")
	}
	blog.ID = insertedID(res)
	return nil
}

func (s *Blogs) Replace(ctx context.Context, blog models.Blog) error {
	return replaceByID(ctx, s.coll, blog.ID, blog, "replace blog")
}

func (s *Blogs) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.coll, id, "delete blog")
}

func (s *Blogs) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	return deleteByIDs(ctx, s.coll, ids, "delete blogs")
}

type BlogCategories struct {
	coll *mongo.Collection
}

func NewBlogCategories(db *mongo.Database) *BlogCategories {
	return &BlogCategories{coll: db.Collection(BlogCategoriesCollection)}
}

func (s *BlogCategories) FindByID(ctx context.Context, id primitive.ObjectID) (models.BlogCategory, error) {
	var category models.BlogCategory
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	return category, translate(err, "find blog category")
}

func (s *BlogCategories) FindBySlug(ctx context.Context, slug string) (models.BlogCategory, error) {
	var category models.BlogCategory
	err := s.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&category)
	return category, translate(err, "find blog category by slug")
}

func (s *BlogCategories) List(ctx context.Context, q ListQuery) ([]models.BlogCategory, int64, error) {
	opts := q.findOptions().SetSort(bson.D{{Key: "name", Value: 1}})
	return listDocuments[models.BlogCategory](ctx, s.coll, q.filter("name"), opts, "list blog categories")
}

func (s *BlogCategories) SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
	return slugTaken(ctx, s.coll, slug, exclude)
}

func (s *BlogCategories) Insert(ctx context.Context, category *models.BlogCategory) error {
	res, err := s.coll.InsertOne(ctx, category)
	if err != nil {
		return translate(err, "insert blog category")
	}
	category.ID = insertedID(res)
	return nil
}

func (s *BlogCategories) Replace(ctx context.Context, category models.BlogCategory) error {
	return replaceByID(ctx, s.coll, category.ID, category, "replace blog category")
}

func (s *BlogCategories) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.coll, id, "delete blog category")
}

func (s *BlogCategories) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	return deleteByIDs(ctx, s.coll, ids, "delete blog categories")
}
