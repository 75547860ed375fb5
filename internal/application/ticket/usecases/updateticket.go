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

// UpdateTicketCommand carries a partial update. Nil fields — whether the key
// was missing or explicitly null in the request body — are left unchanged.
type UpdateTicketCommand struct {
	TicketID    uint
	Title       *string
	Description *string
	Status      *string
	Priority    *string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update ticket command", "error", err)
		return nil, err
	}

	var updated *dto.TicketDTO

	// Read-merge-write runs in one transaction so concurrent updates of the
	// same ticket cannot interleave between the load and the store.
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.ticketRepo.FindByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if err := uc.applyChanges(existing, cmd); err != nil {
			return err
		}

		if err := uc.ticketRepo.Update(txCtx, existing); err != nil {
			return err
		}

		updated = dto.ToTicketDTO(existing)
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketID)

	return updated, nil
}

func (uc *UpdateTicketUseCase) applyChanges(t *ticket.Ticket, cmd UpdateTicketCommand) error {
	if cmd.Title != nil {
		if err := t.ChangeTitle(*cmd.Title); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Description != nil {
		t.ChangeDescription(*cmd.Description)
	}

	if cmd.Status != nil {
		t.ChangeStatus(vo.NewStatus(*cmd.Status))
	}

	if cmd.Priority != nil {
		t.ChangePriority(vo.NewPriority(*cmd.Priority))
	}

	return nil
}

func (uc *UpdateTicketUseCase) validateCommand(cmd UpdateTicketCommand) error {
	if cmd.Title != nil {
		if len(*cmd.Title) == 0 {
			return errors.NewValidationError("title cannot be empty")
		}
		if utf8.RuneCountInString(*cmd.Title) > ticket.MaxTitleLength {
			return errors.NewValidationError("title exceeds maximum length of 120 characters")
		}
	}

	return nil
}
