package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ledger-statement-service/internal/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) ListParties(ctx context.Context) ([]*ledger.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.Party), args.Error(1)
}

func setupPartyRouter(svc *MockPartyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	h := NewPartyHandler(logger, svc)

	router := gin.New()
	router.GET("/parties", h.List)
	return router
}

func TestPartyHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockPartyService)
		router := setupPartyRouter(mockService)

		mockService.On("ListParties", mock.Anything).Return([]*ledger.Party{
			{ID: "abc-company", Name: "ABC Company Ltd", Email: "accounts@abc.test", Entries: make([]ledger.Entry, 4)},
			{ID: "xyz-traders", Name: "XYZ Traders"},
		}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/parties", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		parties, ok := response.Data.([]interface{})
		require.True(t, ok)
		require.Len(t, parties, 2)

		first := parties[0].(map[string]interface{})
		assert.Equal(t, "abc-company", first["id"])
		assert.Equal(t, "accounts@abc.test", first["email"])
		assert.Equal(t, float64(4), first["entry_count"])

		second := parties[1].(map[string]interface{})
		assert.NotContains(t, second, "email")

		mockService.AssertExpectations(t)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		mockService := new(MockPartyService)
		router := setupPartyRouter(mockService)

		mockService.On("ListParties", mock.Anything).Return(nil, errors.New("connection reset")).Once()

		req, _ := http.NewRequest(http.MethodGet, "/parties", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
