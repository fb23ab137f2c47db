package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/metrics"
	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/store"
)

// RegisterRequest is the registration form
type RegisterRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Type     models.UserType `json:"type"`
}

// AuthService authenticates against the in-memory user collection
type AuthService struct {
	store *store.Store
}

func NewAuthService(s *store.Store) *AuthService {
	return &AuthService{store: s}
}

// Login returns the user whose email and password match exactly
func (s *AuthService) Login(email, password string) (models.User, bool) {
	for _, u := range s.store.Users() {
		if u.Email == email && u.Password == password {
			metrics.AuthAttempts.WithLabelValues("login", "success").Inc()
			return u, true
		}
	}
	metrics.AuthAttempts.WithLabelValues("login", "failure").Inc()
	logger.GetLogger().Debug("Login failed", zap.String("email", email))
	return models.User{}, false
}

// Register adds a new user. A duplicate email fails with ErrEmailExists and
// leaves the collection unchanged.
func (s *AuthService) Register(req RegisterRequest) (models.User, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		metrics.AuthAttempts.WithLabelValues("register", "invalid").Inc()
		return models.User{}, newValidationError(FieldErrors{"form": "allFieldsRequired"})
	}
	if req.Type == "" {
		req.Type = models.UserTypeTourist
	}
	if !req.Type.Valid() {
		return models.User{}, newValidationError(FieldErrors{"type": "badRequest"})
	}

	user, err := s.store.AddUserIf(
		func(users []models.User) error {
			for _, u := range users {
				if u.Email == req.Email {
					return ErrEmailExists
				}
			}
			return nil
		},
		func(users []models.User) models.User {
			return models.User{
				ID:       fmt.Sprintf("u%d", len(users)+1),
				Name:     req.Name,
				Email:    req.Email,
				Password: req.Password,
				Type:     req.Type,
			}
		},
	)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("register", "failure").Inc()
		return models.User{}, err
	}

	metrics.AuthAttempts.WithLabelValues("register", "success").Inc()
	logger.GetLogger().Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("type", string(user.Type)))
	return user, nil
}

// CurrentUser resolves a user id from a session token
func (s *AuthService) CurrentUser(id string) (models.User, bool) {
	return s.store.FindUserByID(id)
}
