// Package shared holds message payloads exchanged with external systems.
package shared

import "time"

// StatementDispatchedEvent is published after a statement email has been
// delivered to the SMTP server, so downstream systems can record the send.
type StatementDispatchedEvent struct {
	PartyID        string    `json:"party_id"`
	PartyName      string    `json:"party_name"`
	Recipient      string    `json:"recipient"`
	AttachmentName string    `json:"attachment_name"`
	SavedPath      string    `json:"saved_path,omitempty"`
	CorrelationID  string    `json:"correlation_id,omitempty"`
	DispatchedAt   time.Time `json:"dispatched_at"`
}
