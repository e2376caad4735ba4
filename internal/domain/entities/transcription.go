package entities

import (
	"strings"
	"time"
)

// Transcription is one stored transcription record as produced by the
// audio pipeline and reviewed on the dashboard. Rows are inserted by
// the pipeline, never by this service; the only field this service
// writes is Status.
type Transcription struct {
	ID               string    `json:"id" gorm:"column:id;primaryKey;type:text"`
	OriginalFilename string    `json:"original_filename" gorm:"column:original_filename;type:text"`
	TranscribedText  string    `json:"transcribed_text" gorm:"column:transcribed_text;type:text"`
	Intent           string    `json:"intent" gorm:"column:intent;type:text"`
	Entities         string    `json:"entities" gorm:"column:entities;type:text"` // JSON array of {text,label}
	Timestamp        time.Time `json:"timestamp" gorm:"column:timestamp"`
	Status           Status    `json:"status" gorm:"column:status;type:text"`
	ResolutionNotes  string    `json:"resolution_notes" gorm:"column:resolution_notes;type:text"`
}

// TableName specifies the table name for GORM
func (Transcription) TableName() string {
	return "transcriptions_cont"
}

// MatchesSearch reports whether term is a case-insensitive substring of
// the transcribed text, the intent label, or the original filename. An
// empty term matches every record.
func (t *Transcription) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(t.TranscribedText), term) ||
		strings.Contains(strings.ToLower(t.Intent), term) ||
		strings.Contains(strings.ToLower(t.OriginalFilename), term)
}
