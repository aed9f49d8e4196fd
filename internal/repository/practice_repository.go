package repository

import (
	"context"
	"time"

	"aerosky-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PracticeRepository struct {
	Col *mongo.Collection
}

func NewPracticeRepository(db *mongo.Database) *PracticeRepository {
	return &PracticeRepository{Col: db.Collection("practicesessions")}
}

// IncrementSession folds a practice submission into the (user, subject)
// document as one conditional upsert. The single $inc write is what keeps
// concurrent submissions from losing increments; never split this into a
// read-modify-write.
func (r *PracticeRepository) IncrementSession(ctx context.Context, userID primitive.ObjectID, subject string, questionsAnswered, correctAnswers, timeSpent int) error {
	filter := bson.M{"userId": userID, "subject": subject}
	update := practiceIncrementUpdate(questionsAnswered, correctAnswers, timeSpent)

	_, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// practiceIncrementUpdate builds the $inc/$set document for one practice
// submission. On an upserted document the $inc fields start from zero, so
// create and accumulate share the same write.
func practiceIncrementUpdate(questionsAnswered, correctAnswers, timeSpent int) bson.M {
	return bson.M{
		"$inc": bson.M{
			"questionsAnswered": questionsAnswered,
			"correctAnswers":    correctAnswers,
			"timeSpent":         timeSpent,
		},
		"$set": bson.M{"lastPracticed": time.Now()},
	}
}

func (r *PracticeRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.PracticeSession, error) {
	cur, err := r.Col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var sessions []models.PracticeSession
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
