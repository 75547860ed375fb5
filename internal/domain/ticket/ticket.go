package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	vo "issuetracker/internal/domain/ticket/valueobjects"
)

// MaxTitleLength is the maximum number of characters in a ticket title.
const MaxTitleLength = 120

// Ticket is the single persisted entity of the tracker. Fields are private so
// every mutation goes through a method that keeps the invariants: a non-empty
// title, non-empty status and priority, and an id assigned exactly once by the
// persistence layer.
type Ticket struct {
	id          uint
	title       string
	description *string
	status      vo.Status
	priority    vo.Priority
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket creates a ticket that has not been persisted yet. The id stays
// zero until the repository assigns one. Empty status and priority get the
// open/medium defaults.
func NewTicket(title string, description *string, status vo.Status, priority vo.Priority) (*Ticket, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	if status == "" {
		status = vo.DefaultStatus
	}
	if priority == "" {
		priority = vo.DefaultPriority
	}

	now := time.Now()

	return &Ticket{
		title:       title,
		description: copyDescription(description),
		status:      status,
		priority:    priority,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from its stored representation.
func ReconstructTicket(
	id uint,
	title string,
	description *string,
	status vo.Status,
	priority vo.Priority,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if status == "" {
		return nil, fmt.Errorf("status cannot be empty")
	}
	if priority == "" {
		return nil, fmt.Errorf("priority cannot be empty")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: copyDescription(description),
		status:      status,
		priority:    priority,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

// Description returns a copy of the optional description; nil means unset.
func (t *Ticket) Description() *string {
	return copyDescription(t.description)
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetID records the id generated by the persistence layer. It can be set only once.
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeTitle replaces the title, enforcing the same constraints as creation.
func (t *Ticket) ChangeTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	t.title = title
	t.touch()
	return nil
}

// ChangeDescription replaces the description text.
func (t *Ticket) ChangeDescription(description string) {
	t.description = &description
	t.touch()
}

// ChangeStatus replaces the status.
func (t *Ticket) ChangeStatus(status vo.Status) {
	t.status = status
	t.touch()
}

// ChangePriority replaces the priority.
func (t *Ticket) ChangePriority(priority vo.Priority) {
	t.priority = priority
	t.touch()
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now()
}

func validateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	// The limit counts characters, not bytes, so multibyte titles are not
	// penalized.
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	return nil
}

func copyDescription(description *string) *string {
	if description == nil {
		return nil
	}
	d := *description
	return &d
}
