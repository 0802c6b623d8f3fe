package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/ledger-statement-service/internal/api/service"
)

// PartyHandler handles HTTP requests for party catalog operations
type PartyHandler struct {
	partyService service.PartyService
	logger       *slog.Logger
}

// NewPartyHandler creates a new party handler
func NewPartyHandler(logger *slog.Logger, partyService service.PartyService) *PartyHandler {
	return &PartyHandler{
		partyService: partyService,
		logger:       logger,
	}
}

// List returns every party in the catalog
func (h *PartyHandler) List(c *gin.Context) {
	parties, err := h.partyService.ListParties(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list parties", "error", err)
		RespondInternalError(c, "")
		return
	}

	responses := make([]PartyResponse, 0, len(parties))
	for _, party := range parties {
		responses = append(responses, PartyResponse{
			ID:         party.ID,
			Name:       party.Name,
			Email:      party.Email,
			TaxID:      party.TaxID,
			Address:    party.Address,
			EntryCount: len(party.Entries),
		})
	}

	RespondOK(c, responses)
}
