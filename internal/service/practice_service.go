package service

import (
	"context"
	"fmt"

	"aerosky-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PracticeService struct {
	Repo *repository.PracticeRepository
}

func NewPracticeService(repo *repository.PracticeRepository) *PracticeService {
	return &PracticeService{Repo: repo}
}

// RecordPractice accumulates a practice submission into the (user, subject)
// session. Negative inputs clamp to 0 so a bad client can never walk the
// cumulative counters backwards.
func (s *PracticeService) RecordPractice(ctx context.Context, userID primitive.ObjectID, subject string, questionsAnswered, correctAnswers, timeSpent int) error {
	err := s.Repo.IncrementSession(ctx, userID, subject,
		clampNonNegative(questionsAnswered),
		clampNonNegative(correctAnswers),
		clampNonNegative(timeSpent),
	)
	if err != nil {
		return fmt.Errorf("error updating practice session: %s", err)
	}
	return nil
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
