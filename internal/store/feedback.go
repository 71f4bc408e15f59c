package store

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mealmate/internal/models"
)

const FeedbackCollection = "feedbacks"

type Feedback struct {
	coll *mongo.Collection
}

func NewFeedback(db *mongo.Database) *Feedback {
	return &Feedback{coll: db.Collection(FeedbackCollection)}
}

func (s *Feedback) Insert(ctx context.Context, feedback *models.Feedback) error {
	res, err := s.coll.InsertOne(ctx, feedback)
	if err != nil {
		return translate(err, "insert feedback")
	}
	feedback.ID = insertedID(res)
	return nil
}

func (s *Feedback) ListByRecipe(ctx context.Context, recipe primitive.ObjectID) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"recipe": recipe}, opts)
	if err != nil {
		return nil, translate(err, "list feedback")
	}
	defer cursor.Close(ctx)

	items := make([]models.Feedback, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, translate(err, "decode feedback")
	}
	return items, nil
}

// AverageRating averages every rating left on recipe, rounded to one
// decimal. A recipe without feedback averages 0.
func (s *Feedback) AverageRating(ctx context.Context, recipe primitive.ObjectID) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"recipe": recipe}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "avg": bson.M{"$avg": "$rating"}}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, translate(err, "average rating")
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Avg float64 `bson:"avg"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, translate(err, "decode average rating")
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return math.Round(rows[0].Avg*10) / 10, nil
}
