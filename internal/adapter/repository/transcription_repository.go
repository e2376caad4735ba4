package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/voicedesk/transcription-review/internal/domain/entities"
	"github.com/voicedesk/transcription-review/internal/domain/repositories"
)

// transcriptionRepository implements the TranscriptionRepository interface
type transcriptionRepository struct {
	db *gorm.DB
}

// NewTranscriptionRepository creates a new transcription repository
func NewTranscriptionRepository(db *gorm.DB) repositories.TranscriptionRepository {
	return &transcriptionRepository{db: db}
}

// ListByRecency retrieves all records ordered by timestamp descending
func (r *transcriptionRepository) ListByRecency(ctx context.Context) ([]*entities.Transcription, error) {
	var records []*entities.Transcription
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FindByID retrieves a record by its ID
func (r *transcriptionRepository) FindByID(ctx context.Context, id string) (*entities.Transcription, error) {
	var record entities.Transcription
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// UpdateStatus sets the status field of a single record. RowsAffected
// is deliberately not checked: an absent id is indistinguishable from
// a successful update, matching how the dashboard has always behaved.
func (r *transcriptionRepository) UpdateStatus(ctx context.Context, id string, status entities.Status) error {
	return r.db.WithContext(ctx).
		Model(&entities.Transcription{}).
		Where("id = ?", id).
		Update("status", status).Error
}
