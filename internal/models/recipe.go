package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Ingredient struct {
	Name     string `bson:"name" json:"name"`
	Quantity string `bson:"quantity" json:"quantity"`
}

// Nutrition values are grams per serving.
type Nutrition struct {
	Protein float64 `bson:"protein" json:"protein"`
	Fat     float64 `bson:"fat" json:"fat"`
	Carbs   float64 `bson:"carbs" json:"carbs"`
}

type Recipe struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	PrepTime    int                `bson:"prepTime" json:"prepTime"`
	CookTime    int                `bson:"cookTime" json:"cookTime"`
	TotalTime   int                `bson:"totalTime" json:"totalTime"`
	Servings    int                `bson:"servings" json:"servings"`
	Ingredients []Ingredient       `bson:"ingredients" json:"ingredients"`
	Steps       []string           `bson:"steps" json:"steps"`
	Calories    float64            `bson:"calories" json:"calories"`
	Nutrition   Nutrition          `bson:"nutrition" json:"nutrition"`
	Tags        StringList         `bson:"tags" json:"tags"`
	Rating      float64            `bson:"rating" json:"rating"`
	Views       int64              `bson:"views" json:"views"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
