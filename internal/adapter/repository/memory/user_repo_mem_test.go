package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"rest-user-service/internal/domain/user"
)

func newRepo(t *testing.T) *UserRepoMem {
	return NewUserRepoMem(zaptest.NewLogger(t))
}

func TestCreate(t *testing.T) {
	t.Run("assigns monotonically increasing ids from 1", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for i := 1; i <= 3; i++ {
			id, err := repo.Create(ctx, &user.User{Name: fmt.Sprintf("User %d", i), Email: "u@example.com"})
			require.NoError(t, err)
			assert.Equal(t, int64(i), id)
		}
	})

	t.Run("overwrites client-supplied id", func(t *testing.T) {
		repo := newRepo(t)

		u := &user.User{ID: 999, Name: "Eve", Email: "eve@example.com"}
		id, err := repo.Create(context.Background(), u)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		assert.Equal(t, int64(1), u.ID)
	})

	t.Run("ids never reused after delete", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id1, err := repo.Create(ctx, &user.User{Name: "A", Email: "a@b.com"})
		require.NoError(t, err)

		_, err = repo.Delete(ctx, id1)
		require.NoError(t, err)

		id2, err := repo.Create(ctx, &user.User{Name: "B", Email: "b@c.com"})
		require.NoError(t, err)
		assert.Greater(t, id2, id1)
	})

	t.Run("nil user rejected", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Create(context.Background(), nil)
		assert.Error(t, err)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("round-trips stored fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		details := "likes cats"
		id, err := repo.Create(ctx, &user.User{Name: "Alice", Email: "alice@example.com", Details: &details})
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
		assert.Equal(t, "alice@example.com", got.Email)
		require.NotNil(t, got.Details)
		assert.Equal(t, "likes cats", *got.Details)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("returns a copy", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id, err := repo.Create(ctx, &user.User{Name: "Alice", Email: "alice@example.com"})
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		got.Name = "mutated"

		again, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Alice", again.Name)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("overwrites fields in place, id unchanged", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id, err := repo.Create(ctx, &user.User{Name: "Old", Email: "old@example.com"})
		require.NoError(t, err)

		details := "updated"
		_, err = repo.Update(ctx, &user.User{ID: id, Name: "New", Email: "new@example.com", Details: &details})
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "New", got.Name)
		assert.Equal(t, "new@example.com", got.Email)
		require.NotNil(t, got.Details)
		assert.Equal(t, "updated", *got.Details)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Update(context.Background(), &user.User{ID: 7, Name: "X", Email: "x@y.com"})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes the record", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id, err := repo.Create(ctx, &user.User{Name: "A", Email: "a@b.com"})
		require.NoError(t, err)

		_, err = repo.Delete(ctx, id)
		require.NoError(t, err)

		_, err = repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Delete(context.Background(), 42)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestList(t *testing.T) {
	seed := func(t *testing.T, repo *UserRepoMem, n int) {
		t.Helper()
		for i := 1; i <= n; i++ {
			_, err := repo.Create(context.Background(), &user.User{
				Name:  fmt.Sprintf("User %d", i),
				Email: fmt.Sprintf("u%d@example.com", i),
			})
			require.NoError(t, err)
		}
	}

	t.Run("second page of size one returns second-created user", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, 2)

		got, err := repo.List(context.Background(), user.PageRequest{Page: 2, PageSize: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, "User 2", got[0].Name)
	})

	t.Run("partial final page", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, 5)

		got, err := repo.List(context.Background(), user.PageRequest{Page: 2, PageSize: 3})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, 2)

		got, err := repo.List(context.Background(), user.PageRequest{Page: 5, PageSize: 10})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("empty store", func(t *testing.T) {
		repo := newRepo(t)

		got, err := repo.List(context.Background(), user.PageRequest{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, 4)

		got, err := repo.List(context.Background(), user.PageRequest{Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, got, 4)
		for i, u := range got {
			assert.Equal(t, int64(i+1), u.ID)
		}
	})
}

func TestConcurrentCreates(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repo.Create(ctx, &user.User{Name: "C", Email: "c@d.com"})
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(n), count)
}
