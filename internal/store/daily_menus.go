package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mealmate/internal/models"
)

const DailyMenusCollection = "daily_menus"

type DailyMenus struct {
	coll *mongo.Collection
}

func NewDailyMenus(db *mongo.Database) *DailyMenus {
	return &DailyMenus{coll: db.Collection(DailyMenusCollection)}
}

func (s *DailyMenus) FindByUserDate(ctx context.Context, user primitive.ObjectID, date time.Time) (models.DailyMenu, error) {
	var menu models.DailyMenu
	err := s.coll.FindOne(ctx, bson.M{"user": user, "date": date}).Decode(&menu)
	return menu, translate(err, "find daily menu")
}

// Insert returns ErrDuplicate when the (user, date) index rejects the write.
func (s *DailyMenus) Insert(ctx context.Context, menu *models.DailyMenu) error {
	res, err := s.coll.InsertOne(ctx, menu)
	if err != nil {
		return translate(err, "insert daily menu")
	}
	menu.ID = insertedID(res)
	return nil
}

// Save overwrites the meals and every total in one update.
func (s *DailyMenus) Save(ctx context.Context, menu models.DailyMenu) error {
	res, err := s.coll.UpdateByID(ctx, menu.ID, bson.M{"$set": bson.M{
		"meals":         menu.Meals,
		"totalCalories": menu.TotalCalories,
		"totalProtein":  menu.TotalProtein,
		"totalFat":      menu.TotalFat,
		"totalCarbs":    menu.TotalCarbs,
		"updatedAt":     menu.UpdatedAt,
	}})
	if err != nil {
		return translate(err, "save daily menu")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
