package entities

// Status is the resolution-progress field of a transcription record.
type Status string

const (
	StatusUnresolved Status = "unresolved"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// Statuses lists the allowed values in workflow order.
func Statuses() []Status {
	return []Status{StatusUnresolved, StatusInProgress, StatusResolved}
}

// Valid reports whether s is one of the allowed status values.
func (s Status) Valid() bool {
	switch s {
	case StatusUnresolved, StatusInProgress, StatusResolved:
		return true
	}
	return false
}
