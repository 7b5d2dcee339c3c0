package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/community_incident_service/internal/config"
	"github.com/shenikar/community_incident_service/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "community_incident_service"

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	TouchLastSeen(ctx context.Context, id uuid.UUID, threshold time.Duration) error
	IsOnline(ctx context.Context, id uuid.UUID) (bool, error)
}

// AuthService определяет контракт для регистрации, входа и профиля
type AuthService interface {
	Register(ctx context.Context, email, password, displayName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ParseToken(tokenString string) (*Claims, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
}

// Claims - полезная нагрузка JWT: идентификатор пользователя и роль.
// Роль в клейме используется только как подсказка, admin-гейт
// перечитывает её из записи пользователя.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

type authService struct {
	repo   UserRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewAuthService(repo UserRepository, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// Register создает учетную запись с ролью user.
// Другой роли через этот путь получить нельзя.
func (s *authService) Register(ctx context.Context, email, password, displayName string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   email,
	})
	log.Info("Attempting to register a new user")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			log.Warn("Email already in use")
			return nil, fmt.Errorf("service: %w", err)
		}
		log.WithError(err).Error("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not register user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, nil
}

// Login проверяет пароль и выдает подписанный JWT
func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})
	log.Info("Attempting to log in")

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Login attempt for unknown email")
			return "", nil, fmt.Errorf("service: %w", ErrInvalidCredentials)
		}
		log.WithError(err).Error("Failed to get user by email")
		return "", nil, fmt.Errorf("service: could not log in: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Password mismatch")
		return "", nil, fmt.Errorf("service: %w", ErrInvalidCredentials)
	}

	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		log.WithError(err).Error("Failed to sign token")
		return "", nil, fmt.Errorf("service: could not sign token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return token, user, nil
}

// ParseToken разбирает и проверяет подпись JWT
func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Проверяем алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("service: invalid token")
	}
	return claims, nil
}

// GetUser возвращает пользователя по его UUID
func (s *authService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "GetUser",
		"user_id": id,
	})

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get user from repository")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// UpdateProfile обновляет поля профиля, доступные самому пользователю
func (s *authService) UpdateProfile(ctx context.Context, user *models.User) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "UpdateProfile",
		"user_id": user.ID,
	})
	log.Info("Updating user profile")

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update profile in repository")
		return fmt.Errorf("service: could not update profile: %w", err)
	}

	log.Info("Profile updated successfully")
	return nil
}
