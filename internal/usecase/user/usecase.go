package user

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"rest-user-service/internal/adapter/repository/memory"
	domain "rest-user-service/internal/domain/user"
	apperrors "rest-user-service/pkg/errors"
	"rest-user-service/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Validation error messages surfaced verbatim to the client.
const (
	msgNameRequired = "Name is required."
	msgInvalidEmail = "Invalid email format."
)

// Repository defines the interface for user data access operations.
// It abstracts the store, allowing the in-memory implementation to be
// swapped out in tests.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (int64, error)                // Create a new user
	GetByID(ctx context.Context, id int64) (*domain.User, error)              // Retrieve user by ID
	Update(ctx context.Context, u *domain.User) (int64, error)                // Update existing user
	Delete(ctx context.Context, id int64) (int64, error)                      // Delete user by ID
	List(ctx context.Context, page domain.PageRequest) ([]domain.User, error) // List one page of users
}

// Service implements the business logic for user management operations.
// It provides a clean separation between the transport layer and the store.
type Service struct {
	repo     Repository          // Repository for data access
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for request validation
}

// New creates a new Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	v := validator.New()

	// notblank rejects empty and whitespace-only strings; the stock
	// "required" tag accepts "   ".
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// emailfmt enforces the fixed localpart@domain.tld pattern; the stock
	// "email" tag accepts addresses like "a@b" that must be rejected here.
	_ = v.RegisterValidation("emailfmt", func(fl validator.FieldLevel) bool {
		return validation.IsValidEmail(fl.Field().String())
	})

	return &Service{repo: r, log: log, validate: v}
}

// formatValidationError converts validator.ValidationErrors into the exact
// client-facing message for the first failing rule. Name is declared before
// Email, so a blank name wins over a bad email.
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	first := validationErrors[0]
	switch first.Tag() {
	case "notblank":
		return apperrors.NewValidationError(first.Field(), msgNameRequired)
	case "emailfmt":
		return apperrors.NewValidationError(first.Field(), msgInvalidEmail)
	default:
		return apperrors.NewValidationError(first.Field(), first.Field()+" is invalid")
	}
}

// CreateUser validates the candidate and stores it with a server-assigned id.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*domain.User, error) {
	s.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("create user validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	u := &domain.User{
		Name:    in.Name,
		Email:   in.Email,
		Details: in.Details,
	}
	if _, err := s.repo.Create(ctx, u); err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return u, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			s.log.Warn("user not found", zap.Int64("id", in.ID))
			return nil, apperrors.NewNotFoundError("user", "")
		}
		s.log.Error("failed to get user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}
	return u, nil
}

// UpdateUser overwrites an existing user's name, email and details in place.
// Existence is checked before validation, so an unknown id is reported as
// not-found even when the candidate is also invalid.
func (s *Service) UpdateUser(ctx context.Context, in UpdateUserRequest) (*domain.User, error) {
	s.log.Info("updating user", zap.Int64("id", in.ID), zap.String("name", in.Name), zap.String("email", in.Email))

	if _, err := s.repo.GetByID(ctx, in.ID); err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			s.log.Warn("user not found for update", zap.Int64("id", in.ID))
			return nil, apperrors.NewNotFoundError("user", "")
		}
		s.log.Error("failed to load user for update", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("update user validation failed", zap.Int64("id", in.ID), zap.Error(err))
		return nil, formatValidationError(err)
	}

	u := &domain.User{
		ID:      in.ID,
		Name:    in.Name,
		Email:   in.Email,
		Details: in.Details,
	}
	if _, err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "")
		}
		s.log.Error("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return u, nil
}

// DeleteUser removes a user by ID. The id is never reused afterwards.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) error {
	s.log.Info("deleting user", zap.Int64("id", in.ID))

	if _, err := s.repo.Delete(ctx, in.ID); err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			s.log.Warn("user not found for delete", zap.Int64("id", in.ID))
			return apperrors.NewNotFoundError("user", "")
		}
		s.log.Error("failed to delete user", zap.Int64("id", in.ID), zap.Error(err))
		return err
	}

	return nil
}

// ListUsers returns one page of users. Out-of-range page values are clamped
// to defaults rather than rejected.
func (s *Service) ListUsers(ctx context.Context, in ListUsersRequest) ([]domain.User, error) {
	page := domain.PageRequest{Page: in.Page, PageSize: in.PageSize}.Normalize()

	s.log.Info("listing users", zap.Int64("page", page.Page), zap.Int64("page_size", page.PageSize))

	users, err := s.repo.List(ctx, page)
	if err != nil {
		s.log.Error("failed to list users", zap.Int64("page", page.Page), zap.Error(err))
		return nil, err
	}

	return users, nil
}
