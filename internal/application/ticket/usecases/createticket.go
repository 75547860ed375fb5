package usecases

import (
	"context"
	"unicode/utf8"

	"issuetracker/internal/application/ticket/dto"
	"issuetracker/internal/domain/ticket"
	vo "issuetracker/internal/domain/ticket/valueobjects"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

// CreateTicketCommand carries the fields of a creation request. Optional
// fields are pointers; nil means the client omitted them.
type CreateTicketCommand struct {
	Title       string
	Description *string
	Status      *string
	Priority    *string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	status := vo.NewStatus(stringOrEmpty(cmd.Status))
	priority := vo.NewPriority(stringOrEmpty(cmd.Priority))

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, status, priority)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return dto.ToTicketDTO(newTicket), nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if utf8.RuneCountInString(cmd.Title) > ticket.MaxTitleLength {
		return errors.NewValidationError("title exceeds maximum length of 120 characters")
	}

	return nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
