package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User carries cached running stats alongside the account fields.
// averageScore is overwritten with a value recomputed from the full result
// history on every submission; analytics never read these cached numbers.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	PasswordHash string             `bson:"password" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	TestsTaken   int                `bson:"testsTaken" json:"testsTaken"`
	TotalScore   int                `bson:"totalScore" json:"totalScore"`
	AverageScore int                `bson:"averageScore" json:"averageScore"`
}
