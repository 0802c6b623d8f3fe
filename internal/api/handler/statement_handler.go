package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledger-statement-service/internal/api/middleware"
	"github.com/ledger-statement-service/internal/api/service"
	"github.com/ledger-statement-service/internal/domain/ledger"
	"github.com/ledger-statement-service/internal/statement"
)

// queryDateLayout is the format accepted for from/to query parameters
const queryDateLayout = "2006-01-02"

// StatementHandler handles HTTP requests for statement operations
type StatementHandler struct {
	statementService service.StatementService
	logger           *slog.Logger
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(logger *slog.Logger, statementService service.StatementService) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
		logger:           logger,
	}
}

// Email renders one party's statement and sends it to the requested address
func (h *StatementHandler) Email(c *gin.Context) {
	var req EmailStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.statementService.EmailStatement(c.Request.Context(), service.EmailRequest{
		PartyID:       req.PartyID,
		Recipient:     req.Email,
		Subject:       req.Subject,
		Body:          req.Body,
		CorrelationID: middleware.GetCorrelationID(c),
	})
	if err != nil {
		if errors.Is(err, ledger.ErrPartyNotFound{}) {
			RespondNotFound(c, "Party not found")
			return
		}
		h.logger.Error("Failed to email statement", "party_id", req.PartyID, "error", err)
		RespondInternalError(c, "Failed to send statement email: "+err.Error())
		return
	}

	RespondOK(c, EmailStatementResponse{
		Message:   "Statement sent successfully",
		PartyID:   req.PartyID,
		Recipient: req.Email,
		SavedPath: result.SavedPath,
	})
}

// Preview returns one party's statement as JSON. Optional from/to query
// parameters narrow the range; both default to the current financial year.
func (h *StatementHandler) Preview(c *gin.Context) {
	partyID := c.Param("id")

	from, err := parseQueryDate(c.Query("from"))
	if err != nil {
		RespondBadRequest(c, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := parseQueryDate(c.Query("to"))
	if err != nil {
		RespondBadRequest(c, "Invalid to date, expected YYYY-MM-DD")
		return
	}

	st, err := h.statementService.GetStatement(c.Request.Context(), partyID, from, to)
	if err != nil {
		if errors.Is(err, ledger.ErrPartyNotFound{}) {
			RespondNotFound(c, "Party not found")
			return
		}
		h.logger.Error("Failed to build statement", "party_id", partyID, "error", err)
		RespondInternalError(c, "")
		return
	}

	RespondOK(c, mapStatementToResponse(st))
}

// DispatchAll sends every party with a contact address its statement
func (h *StatementHandler) DispatchAll(c *gin.Context) {
	var req DispatchAllRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Error("Invalid request body", "error", err)
			RespondBadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	summary, err := h.statementService.DispatchAll(c.Request.Context(), req.Subject, req.Body)
	if err != nil {
		h.logger.Error("Bulk dispatch failed", "error", err)
		RespondInternalError(c, "")
		return
	}

	response := DispatchAllResponse{
		Dispatched: summary.Dispatched,
		Failed:     summary.Failed,
	}
	for _, failure := range summary.Failures {
		response.Failures = append(response.Failures, DispatchFailureResponse{
			PartyID: failure.PartyID,
			Error:   failure.Reason,
		})
	}

	RespondOK(c, response)
}

func parseQueryDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(queryDateLayout, value)
}

// mapStatementToResponse maps a statement to its response DTO
func mapStatementToResponse(st *statement.Statement) StatementResponse {
	response := StatementResponse{
		PartyID:        st.Party.ID,
		PartyName:      st.Party.Name,
		FromDate:       st.FromDate.Format(queryDateLayout),
		ToDate:         st.ToDate.Format(queryDateLayout),
		OpeningBalance: st.OpeningBalance.StringFixed(2),
		ClosingBalance: st.ClosingBalance.StringFixed(2),
		Entries:        make([]StatementEntryResponse, 0, len(st.Entries)),
	}

	for _, entry := range st.Entries {
		response.Entries = append(response.Entries, StatementEntryResponse{
			ID:          entry.ID,
			Date:        entry.Date.Format(queryDateLayout),
			Reference:   entry.Reference,
			Particulars: entry.Particulars,
			Debit:       entry.Debit.StringFixed(2),
			Credit:      entry.Credit.StringFixed(2),
			Balance:     entry.Balance.StringFixed(2),
		})
	}

	return response
}
