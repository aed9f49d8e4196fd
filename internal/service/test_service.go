package service

import (
	"context"
	"fmt"
	"log"
	"math"

	"aerosky-service/internal/models"
	"aerosky-service/internal/questionbank"
	"aerosky-service/internal/repository"
	"aerosky-service/internal/scoring"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TestService struct {
	ResultRepo *repository.ResultRepository
	UserRepo   *repository.UserRepository
	Bank       *questionbank.Bank
}

func NewTestService(resultRepo *repository.ResultRepository, userRepo *repository.UserRepository, bank *questionbank.Bank) *TestService {
	return &TestService{ResultRepo: resultRepo, UserRepo: userRepo, Bank: bank}
}

// SubmitTest grades a submission, persists the result, and folds it into the
// user's running stats. The stat update recomputes the average from the full
// result history; if it fails after the result was saved, the result stands
// and the cached average stays stale until the next submission.
func (s *TestService) SubmitTest(ctx context.Context, userID primitive.ObjectID, testType string, answers []models.SubmittedAnswer, timeTaken int) (*models.TestResult, error) {
	questions := s.Bank.QuestionsFor(testType)

	result := scoring.GradeSubmission(testType, answers, timeTaken, questions)
	result.UserID = userID

	if err := s.ResultRepo.Create(ctx, &result); err != nil {
		return nil, fmt.Errorf("error saving test result: %s", err)
	}

	if err := s.updateUserStats(ctx, userID, result.Score); err != nil {
		log.Printf("Warning: stats update failed for user %s: %s", userID.Hex(), err)
	}

	return &result, nil
}

func (s *TestService) updateUserStats(ctx context.Context, userID primitive.ObjectID, score int) error {
	avg, err := s.ResultRepo.AverageScoreForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("error recomputing average score: %s", err)
	}
	return s.UserRepo.ApplyTestStats(ctx, userID, score, int(math.Round(avg)))
}
