package usecases

import (
	"context"

	"issuetracker/internal/application/ticket/dto"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	return dto.ToTicketDTO(t), nil
}
