package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealEntry is one recipe eaten in a meal slot. Quantity multiplies the
// recipe's per-serving nutrition.
type MealEntry struct {
	Recipe   primitive.ObjectID `bson:"recipe" json:"recipe"`
	Quantity float64            `bson:"quantity" json:"quantity"`
}

type Meals struct {
	Breakfast []MealEntry `bson:"breakfast" json:"breakfast"`
	Lunch     []MealEntry `bson:"lunch" json:"lunch"`
	Dinner    []MealEntry `bson:"dinner" json:"dinner"`
	Snack     []MealEntry `bson:"snack" json:"snack"`
}

// All flattens the four slots into one list.
func (m Meals) All() []MealEntry {
	all := make([]MealEntry, 0, len(m.Breakfast)+len(m.Lunch)+len(m.Dinner)+len(m.Snack))
	all = append(all, m.Breakfast...)
	all = append(all, m.Lunch...)
	all = append(all, m.Dinner...)
	all = append(all, m.Snack...)
	return all
}

// DailyMenu is unique per (User, Date). The totals are derived from Meals and
// are rewritten wholesale on every save.
type DailyMenu struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User          primitive.ObjectID `bson:"user" json:"user"`
	Date          time.Time          `bson:"date" json:"date"`
	Meals         Meals              `bson:"meals" json:"meals"`
	TotalCalories float64            `bson:"totalCalories" json:"totalCalories"`
	TotalProtein  float64            `bson:"totalProtein" json:"totalProtein"`
	TotalFat      float64            `bson:"totalFat" json:"totalFat"`
	TotalCarbs    float64            `bson:"totalCarbs" json:"totalCarbs"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
