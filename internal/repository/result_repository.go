package repository

import (
	"context"

	"aerosky-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("testresults")}
}

func (r *ResultRepository) Create(ctx context.Context, result *models.TestResult) error {
	res, err := r.Col.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid
	}
	return nil
}

// FindByUser returns all of a user's results, most recent first.
func (r *ResultRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.TestResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.TestResult
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ResultRepository) FindRecentByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.TestResult, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "completedAt", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.Col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.TestResult
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// AverageScoreForUser recomputes the mean score over the user's full result
// history with an aggregation pipeline. Recomputing from the raw documents,
// rather than dividing the cached totals, keeps the stored average from
// drifting. Returns 0 when the user has no results.
func (r *ResultRepository) AverageScoreForUser(ctx context.Context, userID primitive.ObjectID) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "avg": bson.M{"$avg": "$score"}}}},
	}

	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Avg float64 `bson:"avg"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Avg, nil
}
