package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledger-statement-service/internal/api/handler"
	"github.com/ledger-statement-service/internal/api/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	statementHandler *handler.StatementHandler,
	partyHandler *handler.PartyHandler,
) {
	r.Use(middleware.CorrelationID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		// Party catalog operations
		parties := v1.Group("/parties")
		{
			parties.GET("", partyHandler.List)
			parties.GET("/:id/statement", statementHandler.Preview)
		}

		// Statement dispatch operations
		statements := v1.Group("/statements")
		{
			statements.POST("/email", statementHandler.Email)
			statements.POST("/dispatch", statementHandler.DispatchAll)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
