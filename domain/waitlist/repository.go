package waitlist

import (
	"context"
	"errors"
	"time"

	"github.com/lixi-remit/lixi-landing/internal/models"
	apperrors "github.com/lixi-remit/lixi-landing/pkg/errors"
	"gorm.io/gorm"
)

const duplicateEmailMessage = "Email already exists in waitlist"

//go:generate mockgen -destination=mock_repository.go -package=waitlist github.com/lixi-remit/lixi-landing/domain/waitlist WaitlistRepository

type WaitlistRepository interface {
	// CreateEntry inserts the entry unless its email is already present.
	CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error)
	// GetAllEntries returns every entry, newest first.
	GetAllEntries(ctx context.Context) ([]*models.WaitlistEntry, error)
	FindEntryByID(ctx context.Context, id uint) (*models.WaitlistEntry, error)
	// FindEntryByEmail matches case-insensitively.
	FindEntryByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error)
	Count(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormRepository stores entries in the waitlist_entries table.
func NewGormRepository(db *gorm.DB) WaitlistRepository {
	return &gormRepository{db: db, now: time.Now}
}

func (wr *gormRepository) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	if entry == nil {
		return nil, apperrors.NewInvalidRequestError("entry cannot be nil", nil)
	}

	record := entry.Clone()
	record.ID = 0
	record.Email = NormalizeEmail(record.Email)
	record.CreatedAt = wr.now().UTC()

	if err := wr.db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.NewConflictError(duplicateEmailMessage, err)
		}
		return nil, apperrors.NewDatabaseError("unable to create waitlist entry", err)
	}

	return record, nil
}

func (wr *gormRepository) GetAllEntries(ctx context.Context) ([]*models.WaitlistEntry, error) {
	var entries []*models.WaitlistEntry

	if err := wr.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&entries).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch waitlist entries", err)
	}

	return entries, nil
}

func (wr *gormRepository) FindEntryByID(ctx context.Context, id uint) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry

	if err := wr.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("waitlist entry not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch waitlist entry", err)
	}

	return &entry, nil
}

func (wr *gormRepository) FindEntryByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry

	// Emails are lowercased on insert, so an exact match on the normalised value is enough.
	err := wr.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("waitlist entry not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch waitlist entry", err)
	}

	return &entry, nil
}

func (wr *gormRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := wr.db.WithContext(ctx).Model(&models.WaitlistEntry{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count waitlist entries", err)
	}

	return count, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
