package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"work-log-server/internal/models"
	"work-log-server/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo     repository.UserRepository
	scheduleRepo repository.ScheduleConfigRepository
	jwtSecret    []byte
	tokenTTL     time.Duration
	logger       *logrus.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	scheduleRepo repository.ScheduleConfigRepository,
	jwtSecret string,
	tokenTTL time.Duration,
) *UserService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &UserService{
		userRepo:     userRepo,
		scheduleRepo: scheduleRepo,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		logger:       logger,
	}
}

// Register creates a new user with a hashed password and seeds the default
// work schedule so the slot grid renders on first login.
func (s *UserService) Register(email, password, name string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.logger.WithField("email", email).Info("Registering new user")

	exists, err := s.userRepo.Exists(email)
	if err != nil {
		s.logger.WithError(err).Error("Failed to check user existence")
		return nil, err
	}
	if exists {
		return nil, errors.New("user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.WithError(err).Error("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         models.RoleClient,
	}

	if err := s.userRepo.Create(user); err != nil {
		s.logger.WithError(err).Error("Failed to create user")
		return nil, err
	}

	if err := s.scheduleRepo.Create(models.DefaultScheduleConfig(user.ID)); err != nil {
		s.logger.WithError(err).Error("Failed to create default schedule for new user")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":    user.ID,
		"email": user.Email,
	}).Info("User registered successfully")

	return user, nil
}

// Authenticate verifies the credentials and issues a signed token.
func (s *UserService) Authenticate(email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get user for authentication")
		return "", nil, err
	}
	if user == nil {
		return "", nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.WithField("email", email).Warn("Password mismatch")
		return "", nil, errors.New("invalid email or password")
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		s.logger.WithError(err).Error("Failed to sign token")
		return "", nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":    user.ID,
		"email": user.Email,
	}).Info("User authenticated")

	return token, user, nil
}

// ParseToken validates a bearer token and returns the user ID and role.
func (s *UserService) ParseToken(tokenString string) (uint, string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, "", err
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return 0, "", errors.New("token missing user id")
	}

	role, _ := claims["role"].(string)

	return uint(rawID), role, nil
}

// GetByID returns the user or nil when not found.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// InitializeAdmin promotes the configured base admin email if that user is
// already registered. Called once at startup.
func (s *UserService) InitializeAdmin(email string) error {
	if email == "" {
		return nil
	}

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		s.logger.WithField("email", email).Info("Base admin not registered yet, skipping promotion")
		return nil
	}
	if user.IsAdmin() {
		return nil
	}

	if err := s.userRepo.UpdateRole(email, models.Role(models.RoleAdmin)); err != nil {
		return err
	}

	s.logger.WithField("email", email).Info("Base admin promoted")
	return nil
}

// GetStats returns total user and admin counts.
func (s *UserService) GetStats() (int, int, error) {
	return s.userRepo.GetStats()
}
