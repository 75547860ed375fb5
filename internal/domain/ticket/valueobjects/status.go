package valueobjects

// Status is the workflow state of a ticket. The API accepts free-form status
// text, so Status carries any string; the constants below are the well-known
// values.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// DefaultStatus is assigned when a ticket is created without a status.
const DefaultStatus = StatusOpen

var knownStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (s Status) String() string {
	return string(s)
}

// IsKnown reports whether the status is one of the well-known values.
func (s Status) IsKnown() bool {
	return knownStatuses[s]
}

// NewStatus builds a Status from raw input, applying the default for empty input.
func NewStatus(s string) Status {
	if s == "" {
		return DefaultStatus
	}
	return Status(s)
}
