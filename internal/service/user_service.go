package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"aerosky-service/internal/auth"
	"aerosky-service/internal/models"
	"aerosky-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserLocked         = errors.New("user is locked")
	ErrUserNotFound       = errors.New("user not found")
)

const lockoutMinutes = 10

type FailedLoginAttempt struct {
	failedAt     int64
	failedNumber int
}

type UserService struct {
	UserRepo            *repository.UserRepository
	ResultRepo          *repository.ResultRepository
	PracticeRepo        *repository.PracticeRepository
	RedisRepo           *repository.RedisRepo
	mu                  sync.Mutex
	failedLoginAttempts map[string]*FailedLoginAttempt
}

func NewUserService(userRepo *repository.UserRepository, resultRepo *repository.ResultRepository, practiceRepo *repository.PracticeRepository, redisRepo *repository.RedisRepo) *UserService {
	return &UserService{
		UserRepo:            userRepo,
		ResultRepo:          resultRepo,
		PracticeRepo:        practiceRepo,
		RedisRepo:           redisRepo,
		failedLoginAttempts: make(map[string]*FailedLoginAttempt),
	}
}

func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	existing, err := s.UserRepo.FindByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, fmt.Errorf("error checking existing user: %s", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %s", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating user: %s", err)
	}

	log.Printf("New user registered: %s", email)
	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	lockKey := "aerosky-lock-user-" + email
	if s.RedisRepo.GetInt(ctx, lockKey) != 0 {
		return nil, ErrUserLocked
	}

	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error finding user: %s", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		s.trackFailedLogin(ctx, email, lockKey)
		return nil, ErrInvalidCredentials
	}

	s.mu.Lock()
	delete(s.failedLoginAttempts, email)
	s.mu.Unlock()

	return user, nil
}

// trackFailedLogin locks an account in Redis when failures come faster than
// once a second or pile past ten attempts.
func (s *UserService) trackFailedLogin(ctx context.Context, email, lockKey string) {
	loginTime := time.Now().UnixMilli()

	s.mu.Lock()
	attempt := s.failedLoginAttempts[email]
	if attempt == nil {
		attempt = &FailedLoginAttempt{}
		s.failedLoginAttempts[email] = attempt
	}
	lastFailedAt := attempt.failedAt
	attempt.failedAt = loginTime
	attempt.failedNumber++
	failedNumber := attempt.failedNumber
	s.mu.Unlock()

	if lastFailedAt != 0 && loginTime-lastFailedAt < 1000 {
		log.Printf("WARN: suspicious login activity for %s, instant lock activated", email)
		if err := s.RedisRepo.SaveInt(ctx, lockKey, loginTime, lockoutMinutes*time.Minute); err != nil {
			log.Printf("Warning: could not store lockout for %s: %s", email, err)
		}
	}
	if failedNumber > 10 {
		log.Printf("User %s failed login %d times, locked for %d minutes", email, failedNumber, lockoutMinutes)
		if err := s.RedisRepo.SaveInt(ctx, lockKey, loginTime, lockoutMinutes*time.Minute); err != nil {
			log.Printf("Warning: could not store lockout for %s: %s", email, err)
		}
	}
}

type Profile struct {
	User          *models.User             `json:"user"`
	RecentTests   []models.TestResult      `json:"recentTests"`
	PracticeStats []models.PracticeSession `json:"practiceStats"`
}

func (s *UserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %s", err)
	}
	if user == nil {
		// A valid token for a since-deleted account.
		return nil, ErrUserNotFound
	}

	recent, err := s.ResultRepo.FindRecentByUser(ctx, userID, 5)
	if err != nil {
		return nil, fmt.Errorf("error loading recent tests: %s", err)
	}

	practice, err := s.PracticeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading practice stats: %s", err)
	}

	if recent == nil {
		recent = []models.TestResult{}
	}
	if practice == nil {
		practice = []models.PracticeSession{}
	}

	return &Profile{User: user, RecentTests: recent, PracticeStats: practice}, nil
}
