package snapshot_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/dualstream/internal/domain"
	"github.com/iho/dualstream/internal/snapshot"
)

func TestRoundTrip(t *testing.T) {
	doc := domain.Seed()

	data, err := snapshot.Encode(doc)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := snapshot.Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if !reflect.DeepEqual(doc, decoded) {
		t.Error("round-tripped document differs from original")
	}
}

func TestRoundTrip_TransactionOrder(t *testing.T) {
	doc := domain.Seed()

	data, err := snapshot.Encode(doc)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := snapshot.Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	for i, tx := range doc.Transactions {
		if decoded.Transactions[i].ID != tx.ID {
			t.Fatalf("transaction order changed at %d: want %s, got %s", i, tx.ID, decoded.Transactions[i].ID)
		}
	}
}

func TestDecode_NumberAmounts(t *testing.T) {
	// Backups written by older clients carry amounts as plain JSON
	// numbers rather than strings. Both must decode.
	data := []byte(`{
		"transactions": [
			{"id": "t1", "date": "2024-05-20", "description": "Payout", "amount": 800.50, "type": "Income", "project_tag": "App Dev", "sub_category": "Business", "wallet_id": "w1"}
		],
		"projects": [],
		"wallets": [
			{"id": "w1", "name": "Bank", "balance": 250000, "icon": "landmark", "currency": "PKR"}
		],
		"goals": [],
		"investments": [],
		"budget": 150000
	}`)

	doc, err := snapshot.Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !doc.Transactions[0].Amount.Equal(decimal.RequireFromString("800.50")) {
		t.Errorf("unexpected amount %s", doc.Transactions[0].Amount)
	}
	if !doc.Budget.Equal(decimal.NewFromInt(150000)) {
		t.Errorf("unexpected budget %s", doc.Budget)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty input", data: []byte("")},
		{name: "not json", data: []byte("definitely not json")},
		{name: "truncated object", data: []byte(`{"transactions": [`)},
		{name: "wrong type for wallets", data: []byte(`{"wallets": 42}`)},
		{name: "unknown field", data: []byte(`{"walets": []}`)},
		{name: "trailing garbage", data: []byte(`{"wallets": []}{"wallets": []}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := snapshot.Decode(tt.data)
			if !errors.Is(err, domain.ErrDecode) {
				t.Errorf("expected ErrDecode, got %v", err)
			}
		})
	}
}
