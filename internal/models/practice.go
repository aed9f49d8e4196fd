package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PracticeSession holds cumulative counters for one (user, subject) pair.
// There is at most one document per pair; updates go through a single
// conditional upsert so concurrent increments are never lost.
type PracticeSession struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`
	Subject           string             `bson:"subject" json:"subject"`
	QuestionsAnswered int                `bson:"questionsAnswered" json:"questionsAnswered"`
	CorrectAnswers    int                `bson:"correctAnswers" json:"correctAnswers"`
	TimeSpent         int                `bson:"timeSpent" json:"timeSpent"`
	LastPracticed     time.Time          `bson:"lastPracticed" json:"lastPracticed"`
}
