package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/dualstream/internal/adapter/http/dto"
	"github.com/iho/dualstream/internal/domain"
	"github.com/iho/dualstream/tests/testutil"
)

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLedgerFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	srv := testutil.NewTestServer(t, "")

	// Seeded document comes up
	rec := doRequest(t, srv.Router, http.MethodGet, "/api/v1/document", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var doc domain.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to decode document: %v", err)
	}
	if len(doc.Wallets) != 5 {
		t.Fatalf("expected 5 seed wallets, got %d", len(doc.Wallets))
	}

	// Add a wallet
	rec = doRequest(t, srv.Router, http.MethodPost, "/api/v1/wallets", dto.AddWalletRequest{
		Name:     "SadaPay",
		Balance:  decimal.NewFromInt(30000),
		Icon:     "smartphone",
		Currency: "PKR",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var wallet domain.Wallet
	if err := json.Unmarshal(rec.Body.Bytes(), &wallet); err != nil {
		t.Fatalf("failed to decode wallet: %v", err)
	}

	// Record an expense against it
	rec = doRequest(t, srv.Router, http.MethodPost, "/api/v1/transactions", dto.RecordTransactionRequest{
		Description: "Fuel",
		Amount:      decimal.NewFromInt(6000),
		Type:        "Expense",
		ProjectTag:  "Personal",
		SubCategory: "Personal",
		WalletID:    wallet.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Transfer from the new wallet to a seed wallet
	rec = doRequest(t, srv.Router, http.MethodPost, "/api/v1/transfers", dto.TransferRequest{
		FromWalletID: wallet.ID,
		ToWalletID:   "w4",
		Amount:       decimal.NewFromInt(10000),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Balances reflect both mutations
	final := srv.Service.Document()
	idx := final.WalletIndex(wallet.ID)
	if idx < 0 {
		t.Fatal("new wallet missing")
	}
	if !final.Wallets[idx].Balance.Equal(decimal.NewFromInt(14000)) {
		t.Fatalf("expected balance 14000, got %s", final.Wallets[idx].Balance)
	}
	w4 := final.Wallets[final.WalletIndex("w4")]
	if !w4.Balance.Equal(decimal.NewFromInt(55000)) {
		t.Fatalf("expected w4 balance 55000, got %s", w4.Balance)
	}
}

func TestPersistenceAcrossRestart(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	dir := t.TempDir()

	first := testutil.NewTestServer(t, dir)
	rec := doRequest(t, first.Router, http.MethodPost, "/api/v1/wallets", dto.AddWalletRequest{
		Name:     "NayaPay",
		Balance:  decimal.NewFromInt(12345),
		Currency: "PKR",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// A fresh process over the same data dir sees the mutation
	second := testutil.NewTestServer(t, dir)
	doc := second.Service.Document()
	if len(doc.Wallets) != 6 {
		t.Fatalf("expected 6 wallets after restart, got %d", len(doc.Wallets))
	}
	found := false
	for _, w := range doc.Wallets {
		if w.Name == "NayaPay" && w.Balance.Equal(decimal.NewFromInt(12345)) {
			found = true
		}
	}
	if !found {
		t.Fatal("persisted wallet not found after restart")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	srv := testutil.NewTestServer(t, "")

	rec := doRequest(t, srv.Router, http.MethodGet, "/api/v1/export", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	backup := append([]byte(nil), rec.Body.Bytes()...)

	// Destroy some state
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/wallets/w1?confirm=true", nil)
	del := httptest.NewRecorder()
	srv.Router.ServeHTTP(del, req)
	if del.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", del.Code)
	}

	// Import without confirmation is refused
	importReq := httptest.NewRequest(http.MethodPost, "/api/v1/import", bytes.NewReader(backup))
	refused := httptest.NewRecorder()
	srv.Router.ServeHTTP(refused, importReq)
	if refused.Code != http.StatusPreconditionFailed {
		t.Fatalf("expected 412, got %d", refused.Code)
	}

	// Confirmed import restores the backup
	importReq = httptest.NewRequest(http.MethodPost, "/api/v1/import?confirm=true", bytes.NewReader(backup))
	restored := httptest.NewRecorder()
	srv.Router.ServeHTTP(restored, importReq)
	if restored.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", restored.Code, restored.Body.String())
	}

	doc := srv.Service.Document()
	if doc.WalletIndex("w1") < 0 {
		t.Fatal("expected w1 back after import")
	}
}

func TestHealthEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	srv := testutil.NewTestServer(t, "")

	if rec := doRequest(t, srv.Router, http.MethodGet, "/health", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}
	if rec := doRequest(t, srv.Router, http.MethodGet, "/ready", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /ready, got %d", rec.Code)
	}
	if rec := doRequest(t, srv.Router, http.MethodGet, "/metrics", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
}
