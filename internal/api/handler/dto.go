package handler

// EmailStatementRequest represents a request to email one party its statement.
// Subject and body fall back to the service defaults when omitted.
type EmailStatementRequest struct {
	PartyID string `json:"party_id" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailStatementResponse represents a successful dispatch in API responses
type EmailStatementResponse struct {
	Message   string `json:"message"`
	PartyID   string `json:"party_id"`
	Recipient string `json:"recipient"`
	SavedPath string `json:"saved_path,omitempty"`
}

// DispatchAllRequest represents a request to dispatch statements to every party
type DispatchAllRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// DispatchFailureResponse represents one failed dispatch in a bulk run
type DispatchFailureResponse struct {
	PartyID string `json:"party_id"`
	Error   string `json:"error"`
}

// DispatchAllResponse represents the outcome of a bulk dispatch
type DispatchAllResponse struct {
	Dispatched int                       `json:"dispatched"`
	Failed     int                       `json:"failed"`
	Failures   []DispatchFailureResponse `json:"failures,omitempty"`
}

// StatementEntryResponse represents one dated line of a statement
type StatementEntryResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Reference   string `json:"reference"`
	Particulars string `json:"particulars"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Balance     string `json:"balance"`
}

// StatementResponse represents a full statement in API responses
type StatementResponse struct {
	PartyID        string                   `json:"party_id"`
	PartyName      string                   `json:"party_name"`
	FromDate       string                   `json:"from_date"`
	ToDate         string                   `json:"to_date"`
	OpeningBalance string                   `json:"opening_balance"`
	ClosingBalance string                   `json:"closing_balance"`
	Entries        []StatementEntryResponse `json:"entries"`
}

// PartyResponse represents a party in API responses
type PartyResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	TaxID      string `json:"tax_id,omitempty"`
	Address    string `json:"address,omitempty"`
	EntryCount int    `json:"entry_count"`
}
