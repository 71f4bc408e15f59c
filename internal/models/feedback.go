package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Recipe    primitive.ObjectID  `bson:"recipe" json:"recipe"`
	User      *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	Rating    int                 `bson:"rating" json:"rating"`
	Comment   string              `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}
