package presenter

import (
	"time"

	"github.com/voicedesk/transcription-review/internal/domain/entities"
)

// timestampLayout matches the locale-style date the dashboard shows.
const timestampLayout = "Jan 2, 2006 3:04 PM"

// TranscriptionView is the row shape the dashboard template renders.
type TranscriptionView struct {
	ID               string
	OriginalFilename string
	TranscribedText  string
	Intent           string
	Chips            []entities.EntityChip
	ChipsMalformed   bool
	Timestamp        string
	Status           entities.Status
	ResolutionNotes  string
}

// ToTranscriptionView converts a record into its view model. The
// entities column is parsed here; a row whose payload does not decode
// gets a malformed badge instead of failing the page.
func ToTranscriptionView(record *entities.Transcription) TranscriptionView {
	view := TranscriptionView{
		ID:               record.ID,
		OriginalFilename: record.OriginalFilename,
		TranscribedText:  record.TranscribedText,
		Intent:           record.Intent,
		Timestamp:        formatTimestamp(record.Timestamp),
		Status:           record.Status,
		ResolutionNotes:  record.ResolutionNotes,
	}

	chips, err := entities.ParseEntities(record.Entities)
	if err != nil {
		view.ChipsMalformed = true
		return view
	}
	view.Chips = chips
	return view
}

// ToTranscriptionViews converts a record list, preserving order
func ToTranscriptionViews(records []*entities.Transcription) []TranscriptionView {
	views := make([]TranscriptionView, 0, len(records))
	for _, record := range records {
		views = append(views, ToTranscriptionView(record))
	}
	return views
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(timestampLayout)
}
