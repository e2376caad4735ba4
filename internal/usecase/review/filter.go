package review

import "github.com/voicedesk/transcription-review/internal/domain/entities"

// Filter returns the records whose transcribed text, intent, or
// original filename contains term, case-insensitively. An empty term
// returns the input unchanged. The dashboard applies the same rule in
// the browser; this is the server-side mirror used for the initial
// ?q= prefilter.
func Filter(records []*entities.Transcription, term string) []*entities.Transcription {
	if term == "" {
		return records
	}
	filtered := make([]*entities.Transcription, 0, len(records))
	for _, record := range records {
		if record.MatchesSearch(term) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
