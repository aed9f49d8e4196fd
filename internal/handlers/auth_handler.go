package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"aerosky-service/internal/auth"
	"aerosky-service/internal/config"
	"aerosky-service/internal/db"
	"aerosky-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Counter for registrations
	registrationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aerosky_registration_attempts_total",
			Help: "Total number of registration attempts",
		},
		[]string{"status"}, // status: success/failure
	)

	// Counter for login attempts
	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aerosky_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"},
	)

	// Histogram for login duration
	loginDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aerosky_login_duration_seconds",
			Help:    "Time spent processing login requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)
)

type AuthHandler struct {
	UserService *service.UserService
	jwtSecret   string
	jwtExpiry   time.Duration
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{
		UserService: userService,
		jwtSecret:   config.AppConfig.JWTSecret,
		jwtExpiry:   time.Duration(config.AppConfig.JWTExpiryHours) * time.Hour,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	if !db.IsConnected() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Database connection unavailable"})
		return
	}

	user, err := h.UserService.Register(context.Background(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			registrationAttempts.WithLabelValues("failure").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		registrationAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during registration"})
		return
	}

	token, err := auth.GenerateJWT(user.ID.Hex(), h.jwtSecret, h.jwtExpiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during registration"})
		return
	}

	registrationAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID.Hex(),
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	timer := prometheus.NewTimer(loginDuration.WithLabelValues("pending"))
	defer timer.ObserveDuration()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	if !db.IsConnected() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Database connection unavailable"})
		return
	}

	user, err := h.UserService.Login(context.Background(), req.Email, req.Password)
	if err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		if errors.Is(err, service.ErrUserLocked) {
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Too many failed attempts, try again later"})
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during login"})
		return
	}

	token, err := auth.GenerateJWT(user.ID.Hex(), h.jwtSecret, h.jwtExpiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during login"})
		return
	}

	loginAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID.Hex(),
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
