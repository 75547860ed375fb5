package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"issuetracker/internal/application/ticket/usecases"
	"issuetracker/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title       string  `json:"title" binding:"required,max=120"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
	}
}

// UpdateTicketRequest carries a partial update. Absent keys and explicit
// nulls both leave the field unchanged.
type UpdateTicketRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=120"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
	}
}

// parseTicketID rejects non-numeric path segments only. A numeric id that
// matches no ticket (including 0) falls through to the not-found path.
func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("Invalid ticket ID")
	}
	return uint(id), nil
}
