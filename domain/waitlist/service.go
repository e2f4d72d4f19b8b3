package waitlist

import (
	"context"

	"github.com/lixi-remit/lixi-landing/internal/log"
	apperrors "github.com/lixi-remit/lixi-landing/pkg/errors"
)

type WaitlistService interface {
	// CreateEntry stores a new sign-up and hands it to the notifier.
	CreateEntry(ctx context.Context, req *CreateWaitlistEntryRequest) (*JoinedEntryResponse, error)

	// GetAllEntries lists sign-ups newest first.
	GetAllEntries(ctx context.Context) ([]WaitlistEntryResponse, error)

	CountEntries(ctx context.Context) (int64, error)
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
	notifier   SignupNotifier
	metrics    *Metrics
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository, notifier SignupNotifier, metrics *Metrics) WaitlistService {
	return &waitlistService{
		logger:     logger,
		repository: repository,
		notifier:   notifier,
		metrics:    metrics,
	}
}

func (s *waitlistService) CreateEntry(ctx context.Context, req *CreateWaitlistEntryRequest) (*JoinedEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("CreateEntry received empty request")
		s.metrics.signup(resultInvalid)
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	req.Normalize()

	entry, err := s.repository.CreateEntry(ctx, ToWaitlistEntryModel(req))
	if err != nil {
		if apperrors.IsConflict(err) {
			logger.Info("Duplicate waitlist sign-up rejected")
			s.metrics.signup(resultDuplicate)
			return nil, err
		}
		logger.Error("Failed to create waitlist entry", "error", err)
		s.metrics.signup(resultError)
		return nil, err
	}

	logger.Info("Waitlist entry created", "entry_id", entry.ID)
	s.metrics.signup(resultCreated)

	if s.notifier != nil {
		s.notifier.Notify(ctx, entry)
	}

	response := ToJoinedEntryResponse(entry)
	return &response, nil
}

func (s *waitlistService) GetAllEntries(ctx context.Context) ([]WaitlistEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	entries, err := s.repository.GetAllEntries(ctx)
	if err != nil {
		logger.Error("Failed to get all waitlist entries", "error", err)
		return nil, err
	}

	responses := make([]WaitlistEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToWaitlistEntryResponse(entry))
	}

	return responses, nil
}

func (s *waitlistService) CountEntries(ctx context.Context) (int64, error) {
	count, err := s.repository.Count(ctx)
	if err != nil {
		log.GetLoggerInstanceFromContext(ctx, s.logger).Error("Failed to count waitlist entries", "error", err)
		return 0, err
	}
	return count, nil
}
