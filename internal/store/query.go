package store

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListQuery is the parsed form of the list endpoints' query string.
type ListQuery struct {
	Search   string
	Tags     []string
	Types    []string
	Category string
	Page     int64
	Limit    int64
}

func (q ListQuery) Skip() int64 {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// filter builds the common search/tag/type clauses. searchFields are matched
// case-insensitively with the search text taken literally.
func (q ListQuery) filter(searchFields ...string) bson.M {
	filter := bson.M{}

	if search := strings.TrimSpace(q.Search); search != "" && len(searchFields) > 0 {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		or := make([]bson.M, 0, len(searchFields))
		for _, field := range searchFields {
			or = append(or, bson.M{field: pattern})
		}
		filter["$or"] = or
	}
	if len(q.Tags) > 0 {
		filter["tags"] = bson.M{"$all": q.Tags}
	}
	if len(q.Types) == 1 {
		filter["type"] = q.Types[0]
	} else if len(q.Types) > 1 {
		filter["type"] = bson.M{"$in": q.Types}
	}
	if category := strings.TrimSpace(q.Category); category != "" {
		filter["category"] = category
	}
	return filter
}

func (q ListQuery) findOptions() *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if q.Limit > 0 {
		opts.SetSkip(q.Skip()).SetLimit(q.Limit)
	}
	return opts
}

func slugTaken(ctx context.Context, coll *mongo.Collection, slug string, exclude primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if !exclude.IsZero() {
		filter["_id"] = bson.M{"$ne": exclude}
	}

	count, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, translate(err, "count slug")
	}
	return count > 0, nil
}

func listDocuments[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions, op string) ([]T, int64, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, translate(err, op+" count")
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, translate(err, op+" find")
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, translate(err, op+" decode")
	}
	return items, total, nil
}

func deleteByIDs(ctx context.Context, coll *mongo.Collection, ids []primitive.ObjectID, op string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, translate(err, op)
	}
	return res.DeletedCount, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, op string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err, op)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func replaceByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, doc interface{}, op string) error {
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return translate(err, op)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func insertedID(res *mongo.InsertOneResult) primitive.ObjectID {
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id
}
