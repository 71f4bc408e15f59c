package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mealmate/internal/store"
)

type indexSpec struct {
	collection string
	name       string
	keys       bson.D
	unique     bool
}

// The unique slug and (user, date) indexes close the check-then-insert races
// in slug generation and daily menu creation.
var indexSpecs = []indexSpec{
	{store.RecipesCollection, "slug_unique", bson.D{{Key: "slug", Value: 1}}, true},
	{store.RecipesCollection, "tags_index", bson.D{{Key: "tags", Value: 1}}, false},
	{store.MenusCollection, "slug_unique", bson.D{{Key: "slug", Value: 1}}, true},
	{store.MenusCollection, "createdBy_index", bson.D{{Key: "createdBy", Value: 1}}, false},
	{store.DailyMenusCollection, "user_date_unique", bson.D{{Key: "user", Value: 1}, {Key: "date", Value: 1}}, true},
	{store.AccountsCollection, "email_unique", bson.D{{Key: "email", Value: 1}}, true},
	{store.UsersCollection, "account_unique", bson.D{{Key: "account", Value: 1}}, true},
	{store.FeedbackCollection, "recipe_index", bson.D{{Key: "recipe", Value: 1}, {Key: "createdAt", Value: -1}}, false},
	{store.BlogsCollection, "slug_unique", bson.D{{Key: "slug", Value: 1}}, true},
	{store.BlogCategoriesCollection, "slug_unique", bson.D{{Key: "slug", Value: 1}}, true},
}

func (s indexSpec) model() mongo.IndexModel {
	opts := options.Index().SetName(s.name)
	if s.unique {
		opts.SetUnique(true)
	}
	return mongo.IndexModel{Keys: s.keys, Options: opts}
}

// EnsureIndexes creates every index the stores rely on. Creation is
// idempotent; a failure stops at the first broken index.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for _, spec := range indexSpecs {
		log := logrus.WithFields(logrus.Fields{
			"area":       "DB",
			"collection": spec.collection,
			"index":      spec.name,
		})
		if _, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model()); err != nil {
			log.WithError(err).Error("index creation failed")
			return errors.Wrapf(err, "ensure index %s.%s", spec.collection, spec.name)
		}
		log.Debug("index ensured")
	}
	return nil
}
