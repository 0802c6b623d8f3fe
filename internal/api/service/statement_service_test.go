package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ledger-statement-service/internal/config"
	"github.com/ledger-statement-service/internal/data/static"
	"github.com/ledger-statement-service/internal/domain/ledger"
	"github.com/ledger-statement-service/internal/mailer"
	"github.com/ledger-statement-service/internal/platform/messaging/producers"
	"github.com/ledger-statement-service/internal/statement"
	"github.com/ledger-statement-service/internal/statement/pdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(msg mailer.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

type MockArchiver struct {
	mock.Mock
}

func (m *MockArchiver) Save(fileName string, data []byte) (string, error) {
	args := m.Called(fileName, data)
	return args.String(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func testParty(id, name, email string) *ledger.Party {
	return &ledger.Party{
		ID:    id,
		Name:  name,
		Email: email,
		Entries: []ledger.Entry{
			{
				ID:          id + "-1",
				Date:        time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC),
				Reference:   "INV-1",
				Particulars: "Sales Invoice",
				Debit:       decimal.Zero,
				Credit:      decimal.NewFromInt(1000),
			},
		},
	}
}

func stubRender(data []byte, err error) RenderFunc {
	return func(st *statement.Statement, header pdf.HeaderInfo) ([]byte, error) {
		return data, err
	}
}

func newTestPool(t *testing.T) *DispatchPool {
	t.Helper()
	pool, err := NewDispatchPool(newTestLogger(), &config.DispatchPoolConfig{Size: 2})
	require.NoError(t, err)
	t.Cleanup(pool.Shutdown)
	return pool
}

func newService(t *testing.T, store ledger.PartyStore, render RenderFunc, mockMailer *MockMailer, mockArchiver *MockArchiver, events *MockPublisher) StatementService {
	t.Helper()

	builder := statement.NewBuilderWithClock(store, func() time.Time {
		return time.Date(2024, time.September, 5, 12, 0, 0, 0, time.UTC)
	})

	var publisher producers.MessagePublisher
	if events != nil {
		publisher = events
	}

	return NewStatementService(
		newTestLogger(),
		store,
		builder,
		render,
		mockMailer,
		mockArchiver,
		publisher,
		pdf.HeaderInfo{CompanyName: "Test Org"},
		newTestPool(t),
	)
}

func TestStatementService_EmailStatement(t *testing.T) {
	ctx := context.Background()
	document := []byte("%PDF rendered")

	t.Run("Success", func(t *testing.T) {
		store := static.NewPartyStoreWith(testParty("abc-company", "ABC Company Ltd", "accounts@abc.test"))
		mockMailer := new(MockMailer)
		mockArchiver := new(MockArchiver)
		events := new(MockPublisher)
		svc := newService(t, store, stubRender(document, nil), mockMailer, mockArchiver, events)

		mockArchiver.On("Save", "Ledger_ABC_Company_Ltd.pdf", document).
			Return("/archive/Ledger_ABC_Company_Ltd.pdf", nil).Once()
		mockMailer.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
			return msg.To == "someone@example.test" &&
				msg.Subject == "Custom subject" &&
				msg.AttachmentName == "Ledger_ABC_Company_Ltd.pdf" &&
				string(msg.Attachment) == string(document)
		})).Return(nil).Once()
		events.On("Publish", ctx, "abc-company", mock.Anything).Return(nil).Once()

		result, err := svc.EmailStatement(ctx, EmailRequest{
			PartyID:   "abc-company",
			Recipient: "someone@example.test",
			Subject:   "Custom subject",
			Body:      "Please see attached.",
		})
		require.NoError(t, err)
		assert.Equal(t, "/archive/Ledger_ABC_Company_Ltd.pdf", result.SavedPath)

		mockMailer.AssertExpectations(t)
		mockArchiver.AssertExpectations(t)
		events.AssertExpectations(t)
	})

	t.Run("ArchiveFailureIsNonFatal", func(t *testing.T) {
		store := static.NewPartyStoreWith(testParty("abc-company", "ABC Company Ltd", "accounts@abc.test"))
		mockMailer := new(MockMailer)
		mockArchiver := new(MockArchiver)
		svc := newService(t, store, stubRender(document, nil), mockMailer, mockArchiver, nil)

		mockArchiver.On("Save", mock.Anything, mock.Anything).
			Return("", errors.New("disk full")).Once()
		mockMailer.On("Send", mock.Anything).Return(nil).Once()

		result, err := svc.EmailStatement(ctx, EmailRequest{
			PartyID:   "abc-company",
			Recipient: "someone@example.test",
		})
		require.NoError(t, err)
		assert.Empty(t, result.SavedPath)

		mockMailer.AssertExpectations(t)
		mockArchiver.AssertExpectations(t)
	})

	t.Run("MailFailure", func(t *testing.T) {
		store := static.NewPartyStoreWith(testParty("abc-company", "ABC Company Ltd", "accounts@abc.test"))
		mockMailer := new(MockMailer)
		mockArchiver := new(MockArchiver)
		svc := newService(t, store, stubRender(document, nil), mockMailer, mockArchiver, nil)

		mockArchiver.On("Save", mock.Anything, mock.Anything).Return("/tmp/x.pdf", nil).Once()
		sendErr := errors.New("smtp refused")
		mockMailer.On("Send", mock.Anything).Return(sendErr).Once()

		_, err := svc.EmailStatement(ctx, EmailRequest{
			PartyID:   "abc-company",
			Recipient: "someone@example.test",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, sendErr)
	})

	t.Run("PartyNotFound", func(t *testing.T) {
		store := static.NewPartyStoreWith()
		mockMailer := new(MockMailer)
		mockArchiver := new(MockArchiver)
		svc := newService(t, store, stubRender(document, nil), mockMailer, mockArchiver, nil)

		_, err := svc.EmailStatement(ctx, EmailRequest{PartyID: "missing", Recipient: "x@y.test"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ledger.ErrPartyNotFound{})
		mockMailer.AssertNotCalled(t, "Send", mock.Anything)
	})

	t.Run("RenderFailure", func(t *testing.T) {
		store := static.NewPartyStoreWith(testParty("abc-company", "ABC Company Ltd", "accounts@abc.test"))
		mockMailer := new(MockMailer)
		mockArchiver := new(MockArchiver)
		renderErr := &pdf.RenderError{Err: errors.New("layout engine failure")}
		svc := newService(t, store, stubRender(nil, renderErr), mockMailer, mockArchiver, nil)

		_, err := svc.EmailStatement(ctx, EmailRequest{PartyID: "abc-company", Recipient: "x@y.test"})
		require.Error(t, err)

		var re *pdf.RenderError
		assert.ErrorAs(t, err, &re)
		mockMailer.AssertNotCalled(t, "Send", mock.Anything)
		mockArchiver.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("EventPublishFailureIsNonFatal", func(t *testing.T) {
		store := static.NewPartyStoreWith(testParty("abc-company", "ABC Company Ltd", "accounts@abc.test"))
		mockMailer := new(MockMailer)
		mockArchiver := new(MockArchiver)
		events := new(MockPublisher)
		svc := newService(t, store, stubRender(document, nil), mockMailer, mockArchiver, events)

		mockArchiver.On("Save", mock.Anything, mock.Anything).Return("/tmp/x.pdf", nil).Once()
		mockMailer.On("Send", mock.Anything).Return(nil).Once()
		events.On("Publish", ctx, "abc-company", mock.Anything).Return(errors.New("broker down")).Once()

		_, err := svc.EmailStatement(ctx, EmailRequest{PartyID: "abc-company", Recipient: "x@y.test"})
		require.NoError(t, err)
		events.AssertExpectations(t)
	})
}

func TestStatementService_DispatchAll(t *testing.T) {
	ctx := context.Background()
	document := []byte("%PDF rendered")

	store := static.NewPartyStoreWith(
		testParty("abc-company", "ABC Company Ltd", "accounts@abc.test"),
		testParty("xyz-traders", "XYZ Traders", "finance@xyz.test"),
		testParty("no-contact", "No Contact Ltd", ""),
	)

	mockMailer := new(MockMailer)
	mockArchiver := new(MockArchiver)
	svc := newService(t, store, stubRender(document, nil), mockMailer, mockArchiver, nil)

	mockArchiver.On("Save", mock.Anything, mock.Anything).Return("/tmp/x.pdf", nil)
	mockMailer.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == "accounts@abc.test"
	})).Return(nil).Once()
	mockMailer.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == "finance@xyz.test"
	})).Return(errors.New("smtp refused")).Once()

	summary, err := svc.DispatchAll(ctx, "Subject", "Body")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Dispatched)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "xyz-traders", summary.Failures[0].PartyID)
	assert.Contains(t, summary.Failures[0].Reason, "smtp refused")

	mockMailer.AssertExpectations(t)
}

func TestStatementService_GetStatement(t *testing.T) {
	store := static.NewPartyStoreWith(testParty("abc-company", "ABC Company Ltd", "accounts@abc.test"))
	svc := newService(t, store, stubRender(nil, nil), new(MockMailer), new(MockArchiver), nil)

	st, err := svc.GetStatement(context.Background(), "abc-company", time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, st.Entries, 1)
	assert.True(t, st.ClosingBalance.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), st.FromDate)
}
