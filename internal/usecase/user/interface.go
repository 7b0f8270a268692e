package user

import (
	"context"

	domain "rest-user-service/internal/domain/user"
)

// Usecase defines the interface for user business logic operations.
type Usecase interface {
	CreateUser(ctx context.Context, in CreateUserRequest) (*domain.User, error)
	GetUser(ctx context.Context, in GetUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, in UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, in DeleteUserRequest) error
	ListUsers(ctx context.Context, in ListUsersRequest) ([]domain.User, error)
}
