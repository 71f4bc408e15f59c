package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealTypes lists the accepted menu types in display order.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

func IsMealType(value string) bool {
	for _, t := range MealTypes {
		if t == value {
			return true
		}
	}
	return false
}

type MenuRecipe struct {
	Recipe   primitive.ObjectID `bson:"recipe" json:"recipe"`
	Servings int                `bson:"servings" json:"servings"`
}

type Menu struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Slug        string              `bson:"slug" json:"slug"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Type        string              `bson:"type" json:"type"`
	Serves      int                 `bson:"serves" json:"serves"`
	Tags        StringList          `bson:"tags" json:"tags"`
	Recipes     []MenuRecipe        `bson:"recipes" json:"recipes"`
	CreatedBy   *primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// IsLegacy reports whether the menu predates ownership tracking.
func (m Menu) IsLegacy() bool {
	return m.CreatedBy == nil || m.CreatedBy.IsZero()
}
