package handlers

import (
	"context"
	"net/http"

	"aerosky-service/internal/middleware"
	"aerosky-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PracticeHandler struct {
	Service *service.PracticeService
}

func NewPracticeHandler(s *service.PracticeService) *PracticeHandler {
	return &PracticeHandler{Service: s}
}

type practiceRequest struct {
	Subject           string `json:"subject"`
	QuestionsAnswered int    `json:"questionsAnswered"`
	CorrectAnswers    int    `json:"correctAnswers"`
	TimeSpent         int    `json:"timeSpent"`
}

func (h *PracticeHandler) UpdatePractice(c *gin.Context) {
	var req practiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := primitive.ObjectIDFromHex(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	err = h.Service.RecordPractice(context.Background(), userID, req.Subject, req.QuestionsAnswered, req.CorrectAnswers, req.TimeSpent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Practice session updated"})
}
