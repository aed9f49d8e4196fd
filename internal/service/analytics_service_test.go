package service

import (
	"testing"
	"time"

	"aerosky-service/internal/models"
)

func resultWith(subject string, score int, completedAt time.Time) models.TestResult {
	return models.TestResult{
		TestType:       subject,
		Score:          score,
		TotalQuestions: 3,
		CompletedAt:    completedAt,
	}
}

func TestComputeAnalyticsEmptyHistory(t *testing.T) {
	analytics := computeAnalytics(nil, nil)

	if analytics.TotalTests != 0 {
		t.Errorf("Expected 0 total tests, got %d", analytics.TotalTests)
	}
	if analytics.AverageScore != 0 {
		t.Errorf("Expected average score 0, got %d", analytics.AverageScore)
	}
	if analytics.BestScore != 0 {
		t.Errorf("Expected best score 0, got %d", analytics.BestScore)
	}
	if analytics.RecentTests == nil || len(analytics.RecentTests) != 0 {
		t.Errorf("Expected empty recent tests, got %v", analytics.RecentTests)
	}

	for _, subject := range []string{"math", "science", "english"} {
		stats, ok := analytics.SubjectWiseStats[subject]
		if !ok {
			t.Fatalf("Expected bucket for %s", subject)
		}
		if stats.TestsCount != 0 || stats.AverageScore != 0 || stats.PracticeTime != 0 || stats.PracticeQuestions != 0 {
			t.Errorf("Expected zeroed bucket for %s, got %+v", subject, stats)
		}
	}
}

func TestComputeAnalyticsAggregation(t *testing.T) {
	now := time.Now()
	results := []models.TestResult{
		resultWith("math", 100, now),
		resultWith("math", 33, now.Add(-1*time.Hour)),
		resultWith("science", 67, now.Add(-2*time.Hour)),
	}
	sessions := []models.PracticeSession{
		{Subject: "math", QuestionsAnswered: 8, CorrectAnswers: 5, TimeSpent: 180},
		{Subject: "english", QuestionsAnswered: 3, CorrectAnswers: 2, TimeSpent: 100},
	}

	analytics := computeAnalytics(results, sessions)

	if analytics.TotalTests != 3 {
		t.Errorf("Expected 3 total tests, got %d", analytics.TotalTests)
	}
	// (100+33+67)/3 = 66.67 rounds to 67
	if analytics.AverageScore != 67 {
		t.Errorf("Expected average score 67, got %d", analytics.AverageScore)
	}
	if analytics.BestScore != 100 {
		t.Errorf("Expected best score 100, got %d", analytics.BestScore)
	}
	if len(analytics.RecentTests) != 3 {
		t.Errorf("Expected 3 recent tests, got %d", len(analytics.RecentTests))
	}

	math := analytics.SubjectWiseStats["math"]
	if math.TestsCount != 2 {
		t.Errorf("Expected 2 math tests, got %d", math.TestsCount)
	}
	// (100+33)/2 = 66.5 rounds to 67
	if math.AverageScore != 67 {
		t.Errorf("Expected math average 67, got %d", math.AverageScore)
	}
	if math.PracticeTime != 3 {
		t.Errorf("Expected 3 practice minutes for math, got %d", math.PracticeTime)
	}
	if math.PracticeQuestions != 8 {
		t.Errorf("Expected 8 practice questions for math, got %d", math.PracticeQuestions)
	}

	english := analytics.SubjectWiseStats["english"]
	if english.TestsCount != 0 {
		t.Errorf("Expected 0 english tests, got %d", english.TestsCount)
	}
	// 100s of practice rounds to 2 minutes
	if english.PracticeTime != 2 {
		t.Errorf("Expected 2 practice minutes for english, got %d", english.PracticeTime)
	}

	science := analytics.SubjectWiseStats["science"]
	if science.PracticeTime != 0 || science.PracticeQuestions != 0 {
		t.Errorf("Expected no practice stats for science, got %+v", science)
	}
}

func TestComputeAnalyticsRecentTestsCapped(t *testing.T) {
	now := time.Now()
	var results []models.TestResult
	for i := 0; i < 7; i++ {
		results = append(results, resultWith("math", 50+i, now.Add(-time.Duration(i)*time.Hour)))
	}

	analytics := computeAnalytics(results, nil)

	if len(analytics.RecentTests) != 5 {
		t.Fatalf("Expected recent tests capped at 5, got %d", len(analytics.RecentTests))
	}
	// Input is sorted most recent first; the cap must keep the head.
	for i, r := range analytics.RecentTests {
		if r.Score != results[i].Score {
			t.Errorf("Recent test %d has score %d, want %d", i, r.Score, results[i].Score)
		}
	}
}
