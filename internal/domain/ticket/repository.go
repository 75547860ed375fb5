package ticket

import "context"

// TicketRepository is the persistence contract for tickets. Implementations
// own the durable record; entities passed in and out are transient copies.
type TicketRepository interface {
	// Save inserts a new ticket and writes the generated id back into the entity.
	Save(ctx context.Context, t *Ticket) error
	// FindByID returns the ticket or a not-found error.
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	// List returns all tickets, freshly materialized, in insertion order.
	List(ctx context.Context) ([]*Ticket, error)
	// Update persists the mutable fields of an existing ticket.
	Update(ctx context.Context, t *Ticket) error
	// Delete removes the ticket or returns a not-found error.
	Delete(ctx context.Context, id uint) error
}
