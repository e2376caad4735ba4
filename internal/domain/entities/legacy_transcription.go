package entities

import "time"

// LegacyTranscription maps the older transcriptions table, which tracks
// resolution with a 0/1 is_resolved flag instead of the three-valued
// status field. The dashboard list does not read this table; only the
// resolve endpoint writes it. Whether the flag and the status field are
// one lifecycle or two is still an open product question, so the two
// tables are kept independent.
type LegacyTranscription struct {
	ID               string    `json:"id" gorm:"column:id;primaryKey;type:text"`
	OriginalFilename string    `json:"original_filename" gorm:"column:original_filename;type:text"`
	TranscribedText  string    `json:"transcribed_text" gorm:"column:transcribed_text;type:text"`
	Intent           string    `json:"intent" gorm:"column:intent;type:text"`
	Entities         string    `json:"entities" gorm:"column:entities;type:text"`
	Timestamp        time.Time `json:"timestamp" gorm:"column:timestamp"`
	IsResolved       int       `json:"is_resolved" gorm:"column:is_resolved"`
}

// TableName specifies the table name for GORM
func (LegacyTranscription) TableName() string {
	return "transcriptions"
}
