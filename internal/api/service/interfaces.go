package service

import (
	"context"
	"time"

	"github.com/ledger-statement-service/internal/domain/ledger"
	"github.com/ledger-statement-service/internal/mailer"
	"github.com/ledger-statement-service/internal/statement"
	"github.com/ledger-statement-service/internal/statement/pdf"
)

// EmailRequest carries one statement email request through the service layer.
type EmailRequest struct {
	PartyID       string
	Recipient     string
	Subject       string
	Body          string
	CorrelationID string
}

// DispatchResult reports the outcome of a single statement email. SavedPath
// is empty when local archiving failed (archiving is non-fatal).
type DispatchResult struct {
	SavedPath string
}

// DispatchFailure records one failed party in a bulk dispatch
type DispatchFailure struct {
	PartyID string `json:"party_id"`
	Reason  string `json:"error"`
}

// DispatchSummary reports the outcome of a bulk dispatch
type DispatchSummary struct {
	Dispatched int
	Failed     int
	Failures   []DispatchFailure
}

// StatementService defines the interface for statement operations
type StatementService interface {
	// GetStatement computes a party's statement for the given range.
	// Zero dates select the current-financial-year default.
	// Returns ledger.ErrPartyNotFound for unknown parties.
	GetStatement(ctx context.Context, partyID string, from, to time.Time) (*statement.Statement, error)

	// EmailStatement renders the party's current-financial-year statement,
	// archives it locally (best-effort), and emails it as an attachment.
	EmailStatement(ctx context.Context, req EmailRequest) (*DispatchResult, error)

	// DispatchAll emails every party with a contact address its own
	// statement, fanned out over the dispatch worker pool.
	DispatchAll(ctx context.Context, subject, body string) (*DispatchSummary, error)
}

// PartyService defines the interface for party catalog reads
type PartyService interface {
	ListParties(ctx context.Context) ([]*ledger.Party, error)
}

// Mailer sends one statement message
type Mailer interface {
	Send(msg mailer.Message) error
}

// Archiver persists a rendered statement locally and returns the saved path
type Archiver interface {
	Save(fileName string, data []byte) (string, error)
}

// RenderFunc lays out a statement as a finished document
type RenderFunc func(st *statement.Statement, header pdf.HeaderInfo) ([]byte, error)
