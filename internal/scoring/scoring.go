package scoring

import (
	"math"
	"time"

	"aerosky-service/internal/models"
)

// GradeSubmission resolves each submitted answer against the subject's
// question set and builds an unsaved TestResult. It is a pure computation:
// persisting the result and updating the user's running stats are the
// caller's job.
//
// An answer whose question id is not in the set is not an error; it grades
// as incorrect with an empty correct answer. Matching is exact string
// equality, case-sensitive, no trimming.
func GradeSubmission(testType string, answers []models.SubmittedAnswer, timeTaken int, questions []models.Question) models.TestResult {
	correctAnswers := 0
	graded := make([]models.GradedAnswer, 0, len(answers))
	// A question counts toward correctAnswers at most once, so a submission
	// repeating a question id cannot push the score past 100.
	creditedQuestions := make(map[int]bool)

	for _, answer := range answers {
		var question *models.Question
		for i := range questions {
			if questions[i].ID == answer.QuestionID {
				question = &questions[i]
				break
			}
		}

		entry := models.GradedAnswer{
			QuestionID: answer.QuestionID,
			UserAnswer: answer.UserAnswer,
		}
		if question != nil {
			entry.CorrectAnswer = question.CorrectAnswer
			entry.IsCorrect = question.CorrectAnswer == answer.UserAnswer
		}
		if entry.IsCorrect && !creditedQuestions[answer.QuestionID] {
			creditedQuestions[answer.QuestionID] = true
			correctAnswers++
		}
		graded = append(graded, entry)
	}

	return models.TestResult{
		TestType:       testType,
		Score:          Percentage(correctAnswers, len(questions)),
		TotalQuestions: len(questions),
		CorrectAnswers: correctAnswers,
		TimeTaken:      timeTaken,
		CompletedAt:    time.Now(),
		Answers:        graded,
	}
}

// Percentage rounds 100*correct/total half away from zero. An empty
// question set scores 0 rather than dividing by zero.
func Percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
