// Seeds a development database with sample transcription records,
// standing in for the audio pipeline that inserts rows in real
// deployments. Expects the schema to exist (run scripts/migrate first).
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/voicedesk/transcription-review/internal/domain/entities"
	"github.com/voicedesk/transcription-review/internal/infrastructure/database"
	"github.com/voicedesk/transcription-review/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewSQLiteDB(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.CloseDB(db)

	ctx := context.Background()
	now := time.Now()

	records := []entities.Transcription{
		{
			ID:               uuid.NewString(),
			OriginalFilename: "call_support_0412.wav",
			TranscribedText:  "Hi, my air conditioning unit has been leaking since Monday and I need someone to take a look.",
			Intent:           "REQUEST_SUPPORT",
			Entities:         `[{"text": "air conditioning unit", "label": "EQUIPMENT"}, {"text": "Monday", "label": "DATE"}]`,
			Timestamp:        now.Add(-2 * time.Hour),
			Status:           entities.StatusUnresolved,
		},
		{
			ID:               uuid.NewString(),
			OriginalFilename: "voicemail_maintenance.mp3",
			TranscribedText:  "Calling to schedule the quarterly elevator inspection for building C.",
			Intent:           "SCHEDULE_MAINTAINCE",
			Entities:         `[{"text": "elevator", "label": "EQUIPMENT"}, {"text": "building C", "label": "LOCATION"}]`,
			Timestamp:        now.Add(-26 * time.Hour),
			Status:           entities.StatusInProgress,
		},
		{
			ID:               uuid.NewString(),
			OriginalFilename: "inquiry_billing.wav",
			TranscribedText:  "Could you tell me what your opening hours are over the holidays?",
			Intent:           "GENERAL_INQUIRY",
			Entities:         `[]`,
			Timestamp:        now.Add(-72 * time.Hour),
			Status:           entities.StatusResolved,
			ResolutionNotes:  "Sent holiday schedule by email.",
		},
	}

	for i := range records {
		if err := db.WithContext(ctx).Create(&records[i]).Error; err != nil {
			log.Fatalf("Failed to insert record %s: %v", records[i].ID, err)
		}
	}

	legacy := entities.LegacyTranscription{
		ID:               uuid.NewString(),
		OriginalFilename: "archive_call_0098.wav",
		TranscribedText:  "Requesting a replacement badge for the east entrance.",
		Intent:           "REQUEST_SUPPORT",
		Entities:         `[{"text": "east entrance", "label": "LOCATION"}]`,
		Timestamp:        now.Add(-30 * 24 * time.Hour),
		IsResolved:       0,
	}
	if err := db.WithContext(ctx).Create(&legacy).Error; err != nil {
		log.Fatalf("Failed to insert legacy record %s: %v", legacy.ID, err)
	}

	log.Printf("✅ Seeded %d records and 1 legacy record", len(records))
}
