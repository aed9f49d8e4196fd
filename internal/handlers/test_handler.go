package handlers

import (
	"context"
	"net/http"

	"aerosky-service/internal/middleware"
	"aerosky-service/internal/models"
	"aerosky-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	testSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aerosky_test_submissions_total",
			Help: "Total number of submitted tests",
		},
		[]string{"subject"},
	)

	submissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aerosky_test_submission_duration_seconds",
			Help:    "Time spent grading and persisting a test submission",
			Buckets: prometheus.DefBuckets,
		},
	)
)

type TestHandler struct {
	Service *service.TestService
}

func NewTestHandler(s *service.TestService) *TestHandler {
	return &TestHandler{Service: s}
}

type submitTestRequest struct {
	TestType  string                   `json:"testType"`
	Answers   []models.SubmittedAnswer `json:"answers"`
	TimeTaken int                      `json:"timeTaken"`
}

func (h *TestHandler) SubmitTest(c *gin.Context) {
	timer := prometheus.NewTimer(submissionDuration)
	defer timer.ObserveDuration()

	var req submitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := primitive.ObjectIDFromHex(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	result, err := h.Service.SubmitTest(context.Background(), userID, req.TestType, req.Answers, req.TimeTaken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	testSubmissions.WithLabelValues(req.TestType).Inc()
	c.JSON(http.StatusOK, gin.H{
		"testResult": gin.H{
			"score":          result.Score,
			"correctAnswers": result.CorrectAnswers,
			"totalQuestions": result.TotalQuestions,
			"timeTaken":      result.TimeTaken,
			"percentage":     result.Score,
		},
	})
}
