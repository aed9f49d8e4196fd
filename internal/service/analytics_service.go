package service

import (
	"context"
	"fmt"
	"math"

	"aerosky-service/internal/models"
	"aerosky-service/internal/questionbank"
	"aerosky-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AnalyticsService struct {
	ResultRepo   *repository.ResultRepository
	PracticeRepo *repository.PracticeRepository
}

func NewAnalyticsService(resultRepo *repository.ResultRepository, practiceRepo *repository.PracticeRepository) *AnalyticsService {
	return &AnalyticsService{ResultRepo: resultRepo, PracticeRepo: practiceRepo}
}

// BuildAnalytics is a read-only snapshot over the user's raw test and
// practice documents. It never trusts the cached counters on the user
// record.
func (s *AnalyticsService) BuildAnalytics(ctx context.Context, userID primitive.ObjectID) (*models.Analytics, error) {
	results, err := s.ResultRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading test results: %s", err)
	}

	sessions, err := s.PracticeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading practice sessions: %s", err)
	}

	return computeAnalytics(results, sessions), nil
}

// computeAnalytics folds results (already sorted most recent first) and
// practice sessions into the analytics view.
func computeAnalytics(results []models.TestResult, sessions []models.PracticeSession) *models.Analytics {
	analytics := &models.Analytics{
		TotalTests:       len(results),
		AverageScore:     roundedMeanScore(results),
		BestScore:        bestScore(results),
		RecentTests:      recentTests(results, 5),
		SubjectWiseStats: make(map[string]models.SubjectStats),
	}

	for _, subject := range questionbank.Subjects {
		var subjectResults []models.TestResult
		for _, r := range results {
			if r.TestType == subject {
				subjectResults = append(subjectResults, r)
			}
		}

		stats := models.SubjectStats{
			TestsCount:   len(subjectResults),
			AverageScore: roundedMeanScore(subjectResults),
		}

		for _, session := range sessions {
			if session.Subject == subject {
				stats.PracticeTime = int(math.Round(float64(session.TimeSpent) / 60))
				stats.PracticeQuestions = session.QuestionsAnswered
				break
			}
		}

		analytics.SubjectWiseStats[subject] = stats
	}

	return analytics
}

func roundedMeanScore(results []models.TestResult) int {
	if len(results) == 0 {
		return 0
	}
	sum := 0
	for _, r := range results {
		sum += r.Score
	}
	return int(math.Round(float64(sum) / float64(len(results))))
}

func bestScore(results []models.TestResult) int {
	best := 0
	for _, r := range results {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

func recentTests(results []models.TestResult, limit int) []models.TestResult {
	if len(results) > limit {
		results = results[:limit]
	}
	recent := make([]models.TestResult, len(results))
	copy(recent, results)
	return recent
}
