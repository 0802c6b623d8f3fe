package ledger

// Party is a counterparty whose transactions are tracked in the ledger.
// Entries carry no canonical order; consumers must sort by date.
type Party struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	TaxID   string  `json:"tax_id,omitempty"`
	Address string  `json:"address,omitempty"`
	Entries []Entry `json:"entries"`
}
