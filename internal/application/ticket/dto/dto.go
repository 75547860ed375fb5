package dto

import (
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/shared/mapper"
)

// TicketDTO is the wire representation of a ticket. Description serializes as
// JSON null when unset.
type TicketDTO struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
	}
}

// ToTicketDTOs maps a slice of tickets; the result is never nil so an empty
// list serializes as [].
func ToTicketDTOs(tickets []*ticket.Ticket) []TicketDTO {
	return mapper.MapSlice(tickets, func(t *ticket.Ticket) TicketDTO {
		return *ToTicketDTO(t)
	})
}
