// Package snapshot encodes and decodes the full finance document for
// persistence, export and import. The wire shape is the same JSON in
// all three cases, so an exported backup re-imports without
// transformation.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iho/dualstream/internal/domain"
)

// Encode serializes the document losslessly. Transaction order
// (most recent first) is preserved exactly.
func Encode(doc domain.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses an encoded document. Malformed input is rejected with
// domain.ErrDecode; no partially-decoded document is ever returned.
// Cross-entity referential integrity is not checked: transactions
// pointing at missing wallets decode fine, matching the orphaning
// behavior of wallet deletion.
func Decode(data []byte) (domain.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc domain.Document
	if err := dec.Decode(&doc); err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}

	// Trailing garbage after the document object is malformed input,
	// not a second document.
	if dec.More() {
		return domain.Document{}, fmt.Errorf("%w: trailing data after document", domain.ErrDecode)
	}

	return doc, nil
}
