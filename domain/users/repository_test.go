package users

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	apperrors "github.com/lixi-remit/lixi-landing/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := newMemoryRepository(bcrypt.MinCost)

	user, err := repo.CreateUser(context.Background(), "  Admin ", "correct horse")
	require.NoError(t, err)

	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "admin", user.Username)
	assert.NotEqual(t, "correct horse", user.Password)
	assert.True(t, VerifyPassword(user, "correct horse"))
	assert.False(t, VerifyPassword(user, "wrong horse"))
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	repo := newMemoryRepository(bcrypt.MinCost)

	_, err := repo.CreateUser(context.Background(), "lan", "password-one")
	require.NoError(t, err)

	_, err = repo.CreateUser(context.Background(), "LAN", "password-two")
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestCreateUser_RejectsWeakInput(t *testing.T) {
	repo := newMemoryRepository(bcrypt.MinCost)

	_, err := repo.CreateUser(context.Background(), "ab", "password-one")
	assert.True(t, apperrors.IsInvalidRequest(err))

	_, err = repo.CreateUser(context.Background(), "lan", "short")
	assert.True(t, apperrors.IsInvalidRequest(err))

	_, err = repo.CreateUser(context.Background(), "lan", strings.Repeat("p", 73))
	assert.True(t, apperrors.IsInvalidRequest(err))
}

func TestGetUser(t *testing.T) {
	repo := newMemoryRepository(bcrypt.MinCost)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, "minh", "password-one")
	require.NoError(t, err)

	byID, err := repo.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byName, err := repo.GetUserByUsername(ctx, "Minh")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byName.Username = "mutated"
	again, err := repo.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "minh", again.Username)

	_, err = repo.GetUser(ctx, 99)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = repo.GetUserByUsername(ctx, "nobody")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreateUser_ConcurrentIDsAreUnique(t *testing.T) {
	repo := newMemoryRepository(bcrypt.MinCost)

	var wg sync.WaitGroup
	ids := make(chan uint, 20)
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := repo.CreateUser(context.Background(), fmt.Sprintf("user-%d", i), "password-one")
			if assert.NoError(t, err) {
				ids <- user.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[uint]bool{}
	for id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, 20)
}

func TestVerifyPassword_NilUser(t *testing.T) {
	assert.False(t, VerifyPassword(nil, "anything"))
}
