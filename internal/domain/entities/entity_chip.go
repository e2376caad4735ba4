package entities

import (
	"encoding/json"
	"strings"
)

// EntityChip is one named entity extracted from a transcription, shown
// on the dashboard as a small labelled chip.
type EntityChip struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// ParseEntities decodes the raw entities column into chips. The column
// holds a JSON array of {text,label} objects written by the extraction
// pipeline. A blank column yields no chips; anything undecodable is
// reported as an error so callers can degrade per row instead of
// failing the whole page.
func ParseEntities(raw string) ([]EntityChip, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var chips []EntityChip
	if err := json.Unmarshal([]byte(raw), &chips); err != nil {
		return nil, err
	}
	return chips, nil
}
