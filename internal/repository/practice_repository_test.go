package repository

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"aerosky-service/internal/models"
)

// applyIncrement mirrors how Mongo applies the update server-side: $inc adds
// to the stored counters and $set replaces lastPracticed.
func applyIncrement(session *models.PracticeSession, update bson.M) {
	inc := update["$inc"].(bson.M)
	session.QuestionsAnswered += inc["questionsAnswered"].(int)
	session.CorrectAnswers += inc["correctAnswers"].(int)
	session.TimeSpent += inc["timeSpent"].(int)
	set := update["$set"].(bson.M)
	session.LastPracticed = set["lastPracticed"].(time.Time)
}

func TestPracticeIncrementUpdateShape(t *testing.T) {
	update := practiceIncrementUpdate(5, 3, 120)

	inc, ok := update["$inc"].(bson.M)
	if !ok {
		t.Fatal("expected $inc document")
	}
	if inc["questionsAnswered"] != 5 || inc["correctAnswers"] != 3 || inc["timeSpent"] != 120 {
		t.Errorf("unexpected $inc fields: %v", inc)
	}

	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatal("expected $set document")
	}
	if _, ok := set["lastPracticed"].(time.Time); !ok {
		t.Error("expected lastPracticed to be set to a time.Time")
	}
}

func TestPracticeIncrementUpdateAccumulates(t *testing.T) {
	session := &models.PracticeSession{Subject: "math"}

	applyIncrement(session, practiceIncrementUpdate(5, 3, 120))
	applyIncrement(session, practiceIncrementUpdate(3, 2, 60))

	if session.QuestionsAnswered != 8 {
		t.Errorf("expected questionsAnswered 8, got %d", session.QuestionsAnswered)
	}
	if session.CorrectAnswers != 5 {
		t.Errorf("expected correctAnswers 5, got %d", session.CorrectAnswers)
	}
	if session.TimeSpent != 180 {
		t.Errorf("expected timeSpent 180, got %d", session.TimeSpent)
	}
	if session.LastPracticed.IsZero() {
		t.Error("expected lastPracticed to be updated")
	}
}
