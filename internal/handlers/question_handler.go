package handlers

import (
	"log"
	"net/http"

	"aerosky-service/internal/questionbank"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	Bank *questionbank.Bank
}

func NewQuestionHandler(bank *questionbank.Bank) *QuestionHandler {
	return &QuestionHandler{Bank: bank}
}

// GetQuestionsBySubject serves the full question payload, correct answers
// included. The client needs them to grade practice locally; for tests this
// leaks the answer key pre-submission, a known weakness kept as-is.
func (h *QuestionHandler) GetQuestionsBySubject(c *gin.Context) {
	subject := c.Param("subject")
	questions := h.Bank.QuestionsFor(subject)
	log.Printf("Serving %d questions for %s", len(questions), subject)
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) ListSubjects(c *gin.Context) {
	subjects := make([]gin.H, 0, len(questionbank.Subjects))
	for _, subject := range questionbank.Subjects {
		subjects = append(subjects, gin.H{
			"subject":       subject,
			"questionCount": len(h.Bank.QuestionsFor(subject)),
		})
	}
	c.JSON(http.StatusOK, subjects)
}
