package dto

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// The document and its entities are served in their persisted JSON
// shape (the snapshot format), so domain types go on the wire directly
// and an exported document matches GET /document byte for byte.

// ConsistencyResponse reports referential health of the document.
type ConsistencyResponse struct {
	Wallets      int `json:"wallets"`
	Transactions int `json:"transactions"`
	Orphans      int `json:"orphans"`
}
