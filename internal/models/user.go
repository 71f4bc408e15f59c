package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultCalorieGoal = 2000
	DefaultProteinGoal = 50
	DefaultFatGoal     = 70
	DefaultCarbGoal    = 250
)

// User is the profile attached one-to-one to an Account.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Account     primitive.ObjectID `bson:"account" json:"account"`
	FullName    string             `bson:"fullName" json:"fullName"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Gender      string             `bson:"gender" json:"gender"`
	DateOfBirth *time.Time         `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Job         string             `bson:"job,omitempty" json:"job,omitempty"`
	Height      float64            `bson:"height,omitempty" json:"height,omitempty"`
	Weight      float64            `bson:"weight,omitempty" json:"weight,omitempty"`
	CalorieGoal float64            `bson:"calorieGoal" json:"calorieGoal"`
	ProteinGoal float64            `bson:"proteinGoal" json:"proteinGoal"`
	FatGoal     float64            `bson:"fatGoal" json:"fatGoal"`
	CarbGoal    float64            `bson:"carbGoal" json:"carbGoal"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewUser returns a profile with the default daily nutrition goals.
func NewUser(accountID primitive.ObjectID, fullName string, now time.Time) User {
	return User{
		Account:     accountID,
		FullName:    fullName,
		Gender:      "other",
		CalorieGoal: DefaultCalorieGoal,
		ProteinGoal: DefaultProteinGoal,
		FatGoal:     DefaultFatGoal,
		CarbGoal:    DefaultCarbGoal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
