package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mealmate/internal/models"
)

const RecipesCollection = "recipes"

type Recipes struct {
	coll *mongo.Collection
}

func NewRecipes(db *mongo.Database) *Recipes {
	return &Recipes{coll: db.Collection(RecipesCollection)}
}

func (s *Recipes) FindByID(ctx context.Context, id primitive.ObjectID) (models.Recipe, error) {
	var recipe models.Recipe
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	return recipe, translate(err, "find recipe")
}

// FindByIDs returns the recipes that still exist among ids.
func (s *Recipes) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Recipe, error) {
	if len(ids) == 0 {
		return []models.Recipe{}, nil
	}

	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, translate(err, "find recipes")
	}
	defer cursor.Close(ctx)

	recipes := make([]models.Recipe, 0, len(ids))
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, translate(err, "decode recipes")
	}
	return recipes, nil
}

// ViewBySlug loads a recipe by slug and counts the view in the same round trip.
func (s *Recipes) ViewBySlug(ctx context.Context, slug string) (models.Recipe, error) {
	var recipe models.Recipe
	err := s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"slug": slug},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&recipe)
	return recipe, translate(err, "view recipe")
}

func (s *Recipes) List(ctx context.Context, q ListQuery) ([]models.Recipe, int64, error) {
	return listDocuments[models.Recipe](ctx, s.coll, q.filter("name", "description"), q.findOptions(), "list recipes")
}

func (s *Recipes) SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
	return slugTaken(ctx, s.coll, slug, exclude)
}

func (s *Recipes) Insert(ctx context.Context, recipe *models.Recipe) error {
	res, err := s.coll.InsertOne(ctx, recipe)
	if err != nil {
		return translate(err, "insert recipe")
	}
	recipe.ID = insertedID(res)
	return nil
}

func (s *Recipes) Replace(ctx context.Context, recipe models.Recipe) error {
	return replaceByID(ctx, s.coll, recipe.ID, recipe, "replace recipe")
}

func (s *Recipes) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.coll, id, "delete recipe")
}

func (s *Recipes) SetRating(ctx context.Context, id primitive.ObjectID, rating float64) error {
	res, err := s.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"rating": rating}})
	if err != nil {
		return translate(err, "set recipe rating")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
