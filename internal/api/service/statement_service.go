package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/ledger-statement-service/internal/domain/ledger"
	"github.com/ledger-statement-service/internal/domain/shared"
	"github.com/ledger-statement-service/internal/mailer"
	"github.com/ledger-statement-service/internal/platform/messaging/producers"
	"github.com/ledger-statement-service/internal/statement"
	"github.com/ledger-statement-service/internal/statement/pdf"
)

// StatementServiceImpl implements the StatementService interface
type StatementServiceImpl struct {
	logger  *slog.Logger
	store   ledger.PartyStore
	builder *statement.Builder
	render  RenderFunc
	mailer  Mailer
	archive Archiver
	events  producers.MessagePublisher // nil when dispatch events are disabled
	header  pdf.HeaderInfo
	pool    *DispatchPool
	now     func() time.Time
}

// NewStatementService creates a new statement service. events may be nil to
// disable dispatch-event publishing.
func NewStatementService(
	logger *slog.Logger,
	store ledger.PartyStore,
	builder *statement.Builder,
	render RenderFunc,
	mail Mailer,
	archive Archiver,
	events producers.MessagePublisher,
	header pdf.HeaderInfo,
	pool *DispatchPool,
) StatementService {
	return &StatementServiceImpl{
		logger:  logger,
		store:   store,
		builder: builder,
		render:  render,
		mailer:  mail,
		archive: archive,
		events:  events,
		header:  header,
		pool:    pool,
		now:     time.Now,
	}
}

// GetStatement computes a party's statement for the given range
func (s *StatementServiceImpl) GetStatement(ctx context.Context, partyID string, from, to time.Time) (*statement.Statement, error) {
	return s.builder.Build(ctx, partyID, from, to)
}

// EmailStatement renders, archives, and emails one party's statement for the
// current financial year. Archive failures are logged and leave SavedPath
// empty; the email is still sent.
func (s *StatementServiceImpl) EmailStatement(ctx context.Context, req EmailRequest) (*DispatchResult, error) {
	st, err := s.builder.Build(ctx, req.PartyID, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}

	document, err := s.render(st, s.header)
	if err != nil {
		s.logger.Error("Failed to render statement", "party_id", req.PartyID, "error", err)
		return nil, fmt.Errorf("render statement for party %s: %w", req.PartyID, err)
	}

	fileName := mailer.AttachmentFilename(st.Party.Name)

	savedPath := ""
	if path, archiveErr := s.archive.Save(fileName, document); archiveErr != nil {
		s.logger.Warn("Unable to archive statement locally", "party_id", req.PartyID, "error", archiveErr)
	} else {
		savedPath = path
	}

	err = s.mailer.Send(mailer.Message{
		To:             req.Recipient,
		Subject:        req.Subject,
		Body:           req.Body,
		AttachmentName: fileName,
		Attachment:     document,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Statement dispatched",
		"party_id", req.PartyID,
		"recipient", req.Recipient,
		"attachment", fileName,
		"entries", len(st.Entries),
	)

	s.publishDispatchEvent(ctx, st.Party, req, fileName, savedPath)

	return &DispatchResult{SavedPath: savedPath}, nil
}

// DispatchAll sends every party with a contact address its own statement.
// Sends run on the dispatch pool; per-party failures are collected, not
// propagated.
func (s *StatementServiceImpl) DispatchAll(ctx context.Context, subject, body string) (*DispatchSummary, error) {
	parties, err := s.store.ListParties(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		summary DispatchSummary
	)

	record := func(partyID string, sendErr error) {
		mu.Lock()
		defer mu.Unlock()
		if sendErr != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, DispatchFailure{PartyID: partyID, Reason: sendErr.Error()})
			return
		}
		summary.Dispatched++
	}

	for _, party := range parties {
		if party.Email == "" {
			s.logger.Debug("Skipping party without contact email", "party_id", party.ID)
			continue
		}

		party := party
		wg.Add(1)
		submitErr := s.pool.Submit(func() {
			defer wg.Done()
			_, sendErr := s.EmailStatement(ctx, EmailRequest{
				PartyID:   party.ID,
				Recipient: party.Email,
				Subject:   subject,
				Body:      body,
			})
			record(party.ID, sendErr)
		})
		if submitErr != nil {
			wg.Done()
			record(party.ID, submitErr)
		}
	}

	wg.Wait()

	sort.Slice(summary.Failures, func(i, j int) bool {
		return summary.Failures[i].PartyID < summary.Failures[j].PartyID
	})

	s.logger.Info("Bulk dispatch finished", "dispatched", summary.Dispatched, "failed", summary.Failed)
	return &summary, nil
}

// publishDispatchEvent notifies downstream systems of a completed send. The
// email already went out, so publish failures are logged, not propagated.
func (s *StatementServiceImpl) publishDispatchEvent(ctx context.Context, party *ledger.Party, req EmailRequest, fileName, savedPath string) {
	if s.events == nil {
		return
	}

	event := &shared.StatementDispatchedEvent{
		PartyID:        party.ID,
		PartyName:      party.Name,
		Recipient:      req.Recipient,
		AttachmentName: fileName,
		SavedPath:      savedPath,
		CorrelationID:  req.CorrelationID,
		DispatchedAt:   s.now(),
	}

	if err := s.events.Publish(ctx, party.ID, event); err != nil {
		s.logger.Error("Failed to publish dispatch event", "party_id", party.ID, "error", err)
	}
}
