package users

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/lixi-remit/lixi-landing/internal/models"
	apperrors "github.com/lixi-remit/lixi-landing/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 3
	minPasswordLength = 8
)

// UserRepository backs the account scaffold. Nothing issues sessions from it.
type UserRepository interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, username, password string) (*models.User, error)
}

type memoryRepository struct {
	mu       sync.RWMutex
	byID     map[uint]*models.User
	byName   map[string]uint
	nextID   uint
	hashCost int
}

func NewMemoryRepository() UserRepository {
	return newMemoryRepository(bcrypt.DefaultCost)
}

func newMemoryRepository(cost int) *memoryRepository {
	return &memoryRepository{
		byID:     make(map[uint]*models.User),
		byName:   make(map[string]uint),
		nextID:   1,
		hashCost: cost,
	}
}

func (r *memoryRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *memoryRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	id, ok := r.byName[normalizeUsername(username)]
	r.mu.RUnlock()

	if !ok {
		return nil, apperrors.NewNotFoundError("user not found", nil)
	}
	return r.GetUser(ctx, id)
}

func (r *memoryRepository) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	username = normalizeUsername(username)
	if len(username) < minUsernameLength {
		return nil, apperrors.NewInvalidRequestError("username must be at least 3 characters", nil)
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.NewInvalidRequestError("password must be at least 8 characters", nil)
	}

	hash, err := HashPassword(password, r.hashCost)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[username]; exists {
		return nil, apperrors.NewConflictError("username already exists", nil)
	}

	user := &models.User{ID: r.nextID, Username: username, Password: hash}
	r.byID[user.ID] = user
	r.byName[username] = user.ID
	r.nextID++

	copied := *user
	return &copied, nil
}

func HashPassword(plain string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.NewInvalidRequestError("password must not exceed 72 bytes", err)
		}
		return "", apperrors.NewInternalServerError("failed to hash password", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
func VerifyPassword(user *models.User, plain string) bool {
	if user == nil || user.Password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(plain)) == nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
