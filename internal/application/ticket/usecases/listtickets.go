package usecases

import (
	"context"

	"issuetracker/internal/application/ticket/dto"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/shared/logger"
)

type ListTicketsQuery struct{}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, _ ListTicketsQuery) (*ListTicketsResult, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: dto.ToTicketDTOs(tickets),
	}, nil
}
