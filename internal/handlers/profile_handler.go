package handlers

import (
	"context"
	"errors"
	"net/http"

	"aerosky-service/internal/middleware"
	"aerosky-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type profileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*service.Profile, error)
}

type ProfileHandler struct {
	Service profileService
}

func NewProfileHandler(s *service.UserService) *ProfileHandler {
	return &ProfileHandler{Service: s}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	profile, err := h.Service.GetProfile(context.Background(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
