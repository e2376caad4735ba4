package review

import (
	"context"

	apperrors "github.com/voicedesk/transcription-review/errors"
	"github.com/voicedesk/transcription-review/internal/domain/entities"
	"github.com/voicedesk/transcription-review/internal/domain/repositories"
)

// Service defines the review workflow operations exposed to handlers.
type Service interface {
	// ListTranscriptions returns all records, newest first.
	ListTranscriptions(ctx context.Context) ([]*entities.Transcription, error)

	// UpdateStatus validates the status against the allowed enum and
	// applies it to the record with the given id.
	UpdateStatus(ctx context.Context, id string, status entities.Status) error

	// Resolve marks a record resolved on the legacy table.
	Resolve(ctx context.Context, id string) error
}

// reviewService implements Service over the two transcription tables
type reviewService struct {
	records repositories.TranscriptionRepository
	legacy  repositories.LegacyTranscriptionRepository
}

// NewService creates a new review service
func NewService(records repositories.TranscriptionRepository, legacy repositories.LegacyTranscriptionRepository) Service {
	return &reviewService{
		records: records,
		legacy:  legacy,
	}
}

// ListTranscriptions fetches the full record set for the dashboard
func (s *reviewService) ListTranscriptions(ctx context.Context) ([]*entities.Transcription, error) {
	records, err := s.records.ListByRecency(ctx)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list transcriptions", err)
	}
	return records, nil
}

// UpdateStatus applies a status transition to a single record. The
// enum check happens here so an invalid value never reaches the store.
func (s *reviewService) UpdateStatus(ctx context.Context, id string, status entities.Status) error {
	if !status.Valid() {
		return apperrors.ErrInvalidStatus(string(status))
	}
	if err := s.records.UpdateStatus(ctx, id, status); err != nil {
		return apperrors.ErrDBQueryFailed("update transcription status", err)
	}
	return nil
}

// Resolve flips the legacy is_resolved flag for a single record
func (s *reviewService) Resolve(ctx context.Context, id string) error {
	if err := s.legacy.MarkResolved(ctx, id); err != nil {
		return apperrors.ErrDBQueryFailed("resolve transcription", err)
	}
	return nil
}
