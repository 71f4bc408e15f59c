package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogSection struct {
	Heading string `bson:"heading,omitempty" json:"heading,omitempty"`
	Text    string `bson:"text" json:"text"`
	Image   string `bson:"image,omitempty" json:"image,omitempty"`
}

type Blog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category   string             `bson:"category" json:"category"`
	Title      string             `bson:"title" json:"title"`
	Slug       string             `bson:"slug" json:"slug"`
	Summary    string             `bson:"summary" json:"summary"`
	CoverImage string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Sections   []BlogSection      `bson:"sections" json:"sections"`
	Author     string             `bson:"author,omitempty" json:"author,omitempty"`
	Tags       StringList         `bson:"tags" json:"tags"`
	Date       string             `bson:"date" json:"date"`
	Views      int64              `bson:"views" json:"views"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type BlogCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
