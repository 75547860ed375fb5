package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "issuetracker/internal/application/ticket/dto"
	"issuetracker/internal/application/ticket/usecases"
	"issuetracker/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateTicketUC struct {
	result  *ticketdto.TicketDTO
	err     error
	lastCmd *usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*ticketdto.TicketDTO, error) {
	m.lastCmd = &cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result *usecases.ListTicketsResult
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, _ usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	result  *ticketdto.TicketDTO
	err     error
	lastCmd *usecases.UpdateTicketCommand
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, cmd usecases.UpdateTicketCommand) (*ticketdto.TicketDTO, error) {
	m.lastCmd = &cmd
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	err     error
	lastCmd *usecases.DeleteTicketCommand
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, cmd usecases.DeleteTicketCommand) error {
	m.lastCmd = &cmd
	return m.err
}

// =====================================================================
// Test helpers
// =====================================================================

type testDeps struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	return NewTicketHandler(
		deps.createTicketUC,
		deps.getTicketUC,
		deps.listTicketsUC,
		deps.updateTicketUC,
		deps.deleteTicketUC,
	)
}

func newTestContext(t *testing.T, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")

	return c, w
}

func setIDParam(c *gin.Context, id string) {
	c.Params = gin.Params{{Key: "id", Value: id}}
}

func errMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload.Message
}

func sampleDTO() *ticketdto.TicketDTO {
	desc := "the printer is on fire"
	return &ticketdto.TicketDTO{
		ID:          1,
		Title:       "Printer broken",
		Description: &desc,
		Status:      "open",
		Priority:    "medium",
	}
}

// =====================================================================
// CreateTicket
// =====================================================================

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	mockUC := &mockCreateTicketUC{result: sampleDTO()}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	c, w := newTestContext(t, http.MethodPost, "/tickets", CreateTicketRequest{
		Title: "Printer broken",
	})

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ticketdto.TicketDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "Printer broken", resp.Title)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, "medium", resp.Priority)

	require.NotNil(t, mockUC.lastCmd)
	assert.Equal(t, "Printer broken", mockUC.lastCmd.Title)
	assert.Nil(t, mockUC.lastCmd.Status)
}

func TestTicketHandler_CreateTicket_MissingTitle(t *testing.T) {
	mockUC := &mockCreateTicketUC{result: sampleDTO()}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	c, w := newTestContext(t, http.MethodPost, "/tickets", map[string]any{
		"description": "no title here",
	})

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", errMessage(t, w))
	assert.Nil(t, mockUC.lastCmd)
}

func TestTicketHandler_CreateTicket_MalformedJSON(t *testing.T) {
	handler := newTestTicketHandler(testDeps{createTicketUC: &mockCreateTicketUC{}})

	c, w := newTestContext(t, http.MethodPost, "/tickets", "{not json")

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", errMessage(t, w))
}

func TestTicketHandler_CreateTicket_UseCaseError(t *testing.T) {
	mockUC := &mockCreateTicketUC{err: errors.NewValidationError("title must not be empty")}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	c, w := newTestContext(t, http.MethodPost, "/tickets", CreateTicketRequest{Title: " "})

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "title must not be empty", errMessage(t, w))
}

// =====================================================================
// GetTicket
// =====================================================================

func TestTicketHandler_GetTicket_Success(t *testing.T) {
	handler := newTestTicketHandler(testDeps{getTicketUC: &mockGetTicketUC{result: sampleDTO()}})

	c, w := newTestContext(t, http.MethodGet, "/tickets/1", nil)
	setIDParam(c, "1")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ticketdto.TicketDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.ID)
	require.NotNil(t, resp.Description)
	assert.Equal(t, "the printer is on fire", *resp.Description)
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	handler := newTestTicketHandler(testDeps{
		getTicketUC: &mockGetTicketUC{err: errors.NewNotFoundError("Ticket not found")},
	})

	c, w := newTestContext(t, http.MethodGet, "/tickets/42", nil)
	setIDParam(c, "42")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Ticket not found", errMessage(t, w))
}

func TestTicketHandler_GetTicket_InvalidID(t *testing.T) {
	handler := newTestTicketHandler(testDeps{getTicketUC: &mockGetTicketUC{result: sampleDTO()}})

	c, w := newTestContext(t, http.MethodGet, "/tickets/abc", nil)
	setIDParam(c, "abc")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid ticket ID", errMessage(t, w))
}

// =====================================================================
// ListTickets
// =====================================================================

func TestTicketHandler_ListTickets_Success(t *testing.T) {
	handler := newTestTicketHandler(testDeps{
		listTicketsUC: &mockListTicketsUC{
			result: &usecases.ListTicketsResult{
				Tickets: []ticketdto.TicketDTO{*sampleDTO()},
			},
		},
	})

	c, w := newTestContext(t, http.MethodGet, "/tickets", nil)

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []ticketdto.TicketDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Printer broken", resp[0].Title)
}

func TestTicketHandler_ListTickets_Empty(t *testing.T) {
	handler := newTestTicketHandler(testDeps{
		listTicketsUC: &mockListTicketsUC{
			result: &usecases.ListTicketsResult{Tickets: []ticketdto.TicketDTO{}},
		},
	})

	c, w := newTestContext(t, http.MethodGet, "/tickets", nil)

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

// =====================================================================
// UpdateTicket
// =====================================================================

func TestTicketHandler_UpdateTicket_PartialBody(t *testing.T) {
	mockUC := &mockUpdateTicketUC{result: sampleDTO()}
	handler := newTestTicketHandler(testDeps{updateTicketUC: mockUC})

	c, w := newTestContext(t, http.MethodPut, "/tickets/1", map[string]any{
		"status": "closed",
	})
	setIDParam(c, "1")

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, mockUC.lastCmd)
	assert.Equal(t, uint(1), mockUC.lastCmd.TicketID)
	assert.Nil(t, mockUC.lastCmd.Title)
	assert.Nil(t, mockUC.lastCmd.Description)
	require.NotNil(t, mockUC.lastCmd.Status)
	assert.Equal(t, "closed", *mockUC.lastCmd.Status)
}

func TestTicketHandler_UpdateTicket_NotFound(t *testing.T) {
	handler := newTestTicketHandler(testDeps{
		updateTicketUC: &mockUpdateTicketUC{err: errors.NewNotFoundError("Ticket not found")},
	})

	c, w := newTestContext(t, http.MethodPut, "/tickets/42", map[string]any{"title": "new"})
	setIDParam(c, "42")

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Ticket not found", errMessage(t, w))
}

func TestTicketHandler_UpdateTicket_MalformedJSON(t *testing.T) {
	mockUC := &mockUpdateTicketUC{result: sampleDTO()}
	handler := newTestTicketHandler(testDeps{updateTicketUC: mockUC})

	c, w := newTestContext(t, http.MethodPut, "/tickets/1", `{"title": `)
	setIDParam(c, "1")

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", errMessage(t, w))
	assert.Nil(t, mockUC.lastCmd)
}

func TestTicketHandler_UpdateTicket_InvalidID(t *testing.T) {
	handler := newTestTicketHandler(testDeps{updateTicketUC: &mockUpdateTicketUC{}})

	c, w := newTestContext(t, http.MethodPut, "/tickets/-5", map[string]any{"title": "new"})
	setIDParam(c, "-5")

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid ticket ID", errMessage(t, w))
}

func TestTicketHandler_GetTicket_ZeroIDIsNotFound(t *testing.T) {
	handler := newTestTicketHandler(testDeps{
		getTicketUC: &mockGetTicketUC{err: errors.NewNotFoundError("Ticket not found")},
	})

	c, w := newTestContext(t, http.MethodGet, "/tickets/0", nil)
	setIDParam(c, "0")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Ticket not found", errMessage(t, w))
}

// =====================================================================
// DeleteTicket
// =====================================================================

func TestTicketHandler_DeleteTicket_Success(t *testing.T) {
	mockUC := &mockDeleteTicketUC{}
	handler := newTestTicketHandler(testDeps{deleteTicketUC: mockUC})

	c, w := newTestContext(t, http.MethodDelete, "/tickets/1", nil)
	setIDParam(c, "1")

	handler.DeleteTicket(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	require.NotNil(t, mockUC.lastCmd)
	assert.Equal(t, uint(1), mockUC.lastCmd.TicketID)
}

func TestTicketHandler_DeleteTicket_NotFound(t *testing.T) {
	handler := newTestTicketHandler(testDeps{
		deleteTicketUC: &mockDeleteTicketUC{err: errors.NewNotFoundError("Ticket not found")},
	})

	c, w := newTestContext(t, http.MethodDelete, "/tickets/42", nil)
	setIDParam(c, "42")

	handler.DeleteTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Ticket not found", errMessage(t, w))
}
