package valueobjects

// Priority is the urgency of a ticket. Like Status, it carries any string;
// the constants below are the well-known values.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DefaultPriority is assigned when a ticket is created without a priority.
const DefaultPriority = PriorityMedium

var knownPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

func (p Priority) String() string {
	return string(p)
}

// IsKnown reports whether the priority is one of the well-known values.
func (p Priority) IsKnown() bool {
	return knownPriorities[p]
}

// NewPriority builds a Priority from raw input, applying the default for empty input.
func NewPriority(s string) Priority {
	if s == "" {
		return DefaultPriority
	}
	return Priority(s)
}
