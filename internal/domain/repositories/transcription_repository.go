package repositories

import (
	"context"

	"github.com/voicedesk/transcription-review/internal/domain/entities"
)

// TranscriptionRepository defines data access for the continuing
// transcriptions table read and written by the dashboard.
type TranscriptionRepository interface {
	// ListByRecency returns every record ordered by timestamp, newest
	// first. The dashboard renders the full set; there is no pagination.
	ListByRecency(ctx context.Context) ([]*entities.Transcription, error)

	// FindByID returns the record with the given id, or nil when no row
	// matches.
	FindByID(ctx context.Context, id string) (*entities.Transcription, error)

	// UpdateStatus sets the status of the record with the given id. An
	// id matching no row is not an error; the update simply affects
	// zero rows.
	UpdateStatus(ctx context.Context, id string, status entities.Status) error
}

// LegacyTranscriptionRepository defines data access for the older
// transcriptions table, which only the resolve endpoint touches.
type LegacyTranscriptionRepository interface {
	// MarkResolved sets is_resolved = 1 on the record with the given
	// id. As with UpdateStatus, an absent id affects zero rows and is
	// not an error.
	MarkResolved(ctx context.Context, id string) error
}
