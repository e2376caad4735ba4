package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/voicedesk/transcription-review/internal/domain/entities"
	"github.com/voicedesk/transcription-review/internal/domain/repositories"
)

// legacyTranscriptionRepository implements the LegacyTranscriptionRepository interface
type legacyTranscriptionRepository struct {
	db *gorm.DB
}

// NewLegacyTranscriptionRepository creates a repository over the older
// transcriptions table
func NewLegacyTranscriptionRepository(db *gorm.DB) repositories.LegacyTranscriptionRepository {
	return &legacyTranscriptionRepository{db: db}
}

// MarkResolved flips the is_resolved flag on a single record
func (r *legacyTranscriptionRepository) MarkResolved(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entities.LegacyTranscription{}).
		Where("id = ?", id).
		Update("is_resolved", 1).Error
}
