// Package testutil provides helpers for integration tests.
package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	adaptershttp "github.com/iho/dualstream/internal/adapter/http"
	"github.com/iho/dualstream/internal/adapter/http/handler"
	"github.com/iho/dualstream/internal/adapter/idgen"
	"github.com/iho/dualstream/internal/adapter/store"
	"github.com/iho/dualstream/internal/ledger"
)

// TestServer wires the full stack over a file-backed snapshot store in
// a temporary directory.
type TestServer struct {
	Service *ledger.Service
	Store   *store.FileStore
	Router  http.Handler
	Dir     string
}

// NewTestServer builds a server with seeded state. Re-using the same
// dir across calls simulates a process restart over the same data.
func NewTestServer(t *testing.T, dir string) *TestServer {
	t.Helper()

	if dir == "" {
		dir = t.TempDir()
	}

	cfg := store.Config{StorageKey: "dualstream_finance_test", SchemaVersion: 1}
	fileStore, err := store.NewFileStore(dir, cfg)
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}

	logger := zerolog.Nop()
	retrying := store.NewRetryingStore(fileStore, logger)

	engine := ledger.NewEngine(idgen.NewULIDGenerator(), ledger.SystemClock{})
	svc := ledger.NewService(engine, retrying, logger, nil)

	if err := svc.Open(context.Background()); err != nil {
		t.Fatalf("failed to open service: %v", err)
	}

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		DocumentHandler:    handler.NewDocumentHandler(svc),
		TransactionHandler: handler.NewTransactionHandler(svc),
		TransferHandler:    handler.NewTransferHandler(svc),
		WalletHandler:      handler.NewWalletHandler(svc),
		PortfolioHandler:   handler.NewPortfolioHandler(svc),
		SnapshotHandler:    handler.NewSnapshotHandler(svc),
		HealthHandler:      handler.NewHealthHandler(retrying),
		Logger:             logger,
	})

	return &TestServer{
		Service: svc,
		Store:   fileStore,
		Router:  router,
		Dir:     dir,
	}
}
