package memory

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"rest-user-service/internal/domain/user"
)

// ErrUserNotFound is returned when no user exists with the requested ID.
var ErrUserNotFound = errors.New("user not found")

// UserRepoMem implements the Repository interface with an in-process ordered
// collection. The collection is empty at every process start; nothing is
// persisted. A single RWMutex serializes mutations because the HTTP server
// runs handlers on concurrent goroutines.
type UserRepoMem struct {
	mu     sync.RWMutex
	users  []user.User // insertion-ordered
	nextID int64       // monotonic; ids are never reused, even after deletes
	log    *zap.Logger
}

// NewUserRepoMem creates an empty in-memory user repository.
func NewUserRepoMem(log *zap.Logger) *UserRepoMem {
	return &UserRepoMem{nextID: 1, log: log}
}

// Create assigns the next sequential id to u (any caller-supplied id is
// overwritten) and appends the record.
func (r *UserRepoMem) Create(ctx context.Context, u *user.User) (int64, error) {
	if u == nil {
		return 0, errors.New("user cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *u)

	r.log.Info("user created in store", zap.Int64("id", u.ID))
	return u.ID, nil
}

// GetByID retrieves a user by their unique ID.
func (r *UserRepoMem) GetByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}

	r.log.Debug("user not found in store", zap.Int64("id", id))
	return nil, ErrUserNotFound
}

// Update overwrites name, email and details of the record with u's id.
// The id itself never changes.
func (r *UserRepoMem) Update(ctx context.Context, u *user.User) (int64, error) {
	if u == nil {
		return 0, errors.New("user cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == u.ID {
			r.users[i].Name = u.Name
			r.users[i].Email = u.Email
			r.users[i].Details = u.Details
			r.log.Info("user updated in store", zap.Int64("id", u.ID))
			return u.ID, nil
		}
	}

	return 0, ErrUserNotFound
}

// Delete removes the record with the given id. The id is not reused.
func (r *UserRepoMem) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			r.log.Info("user deleted from store", zap.Int64("id", id))
			return id, nil
		}
	}

	return 0, ErrUserNotFound
}

// List returns one page of the store's current ordered contents. Pages past
// the end are empty, never an error.
func (r *UserRepoMem) List(ctx context.Context, page user.PageRequest) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offset := page.Offset()
	if offset >= int64(len(r.users)) {
		return []user.User{}, nil
	}

	end := offset + page.PageSize
	if end > int64(len(r.users)) {
		end = int64(len(r.users))
	}

	out := make([]user.User, end-offset)
	copy(out, r.users[offset:end])
	return out, nil
}

// Count returns the number of records currently in the store.
func (r *UserRepoMem) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}
