package waitlist

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lixi-remit/lixi-landing/internal/models"
	apperrors "github.com/lixi-remit/lixi-landing/pkg/errors"
)

// memoryRepository keeps entries for the life of the process.
type memoryRepository struct {
	mu      sync.RWMutex
	entries map[uint]*models.WaitlistEntry
	nextID  uint
	now     func() time.Time
}

func NewMemoryRepository() WaitlistRepository {
	return newMemoryRepository(time.Now)
}

func newMemoryRepository(now func() time.Time) *memoryRepository {
	return &memoryRepository{
		entries: make(map[uint]*models.WaitlistEntry),
		nextID:  1,
		now:     now,
	}
}

func (r *memoryRepository) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperrors.NewInvalidRequestError("entry cannot be nil", nil)
	}

	email := NormalizeEmail(entry.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.entries {
		if existing.Email == email {
			return nil, apperrors.NewConflictError(duplicateEmailMessage, nil)
		}
	}

	record := entry.Clone()
	record.ID = r.nextID
	record.Email = email
	record.CreatedAt = r.now().UTC()

	r.entries[record.ID] = record
	r.nextID++

	return record.Clone(), nil
}

func (r *memoryRepository) GetAllEntries(ctx context.Context) ([]*models.WaitlistEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	entries := make([]*models.WaitlistEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID > entries[j].ID
	})

	return entries, nil
}

func (r *memoryRepository) FindEntryByID(ctx context.Context, id uint) (*models.WaitlistEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("waitlist entry not found", nil)
	}
	return entry.Clone(), nil
}

func (r *memoryRepository) FindEntryByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	email = NormalizeEmail(email)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if entry.Email == email {
			return entry.Clone(), nil
		}
	}
	return nil, apperrors.NewNotFoundError("waitlist entry not found", nil)
}

func (r *memoryRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.entries)), nil
}
