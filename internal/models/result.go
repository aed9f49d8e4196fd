package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestResult is written exactly once per submission and never updated.
type TestResult struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	TestType       string             `bson:"testType" json:"testType"`
	Score          int                `bson:"score" json:"score"`
	TotalQuestions int                `bson:"totalQuestions" json:"totalQuestions"`
	CorrectAnswers int                `bson:"correctAnswers" json:"correctAnswers"`
	TimeTaken      int                `bson:"timeTaken" json:"timeTaken"`
	CompletedAt    time.Time          `bson:"completedAt" json:"completedAt"`
	Answers        []GradedAnswer     `bson:"answers" json:"answers"`
}
