package ledger_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/dualstream/internal/domain"
	"github.com/iho/dualstream/internal/ledger"
	"github.com/iho/dualstream/internal/ledger/mocks"
	"github.com/iho/dualstream/internal/snapshot"
)

func newService(snapshots ledger.SnapshotStore) *ledger.Service {
	engine := ledger.NewEngine(mocks.NewMockIDGenerator(), mocks.NewMockClock())
	return ledger.NewService(engine, snapshots, zerolog.Nop(), nil)
}

func TestService_Open_SeedWhenEmpty(t *testing.T) {
	svc := newService(mocks.NewMockSnapshotStore())

	if err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	doc := svc.Document()
	if !reflect.DeepEqual(doc, domain.Seed()) {
		t.Error("expected seed document when no snapshot exists")
	}
}

func TestService_Open_SeedWhenCorrupt(t *testing.T) {
	snapshots := mocks.NewMockSnapshotStore()
	if err := snapshots.Save(context.Background(), []byte("not a document")); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}

	svc := newService(snapshots)
	if err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open should fall back, not fail: %v", err)
	}

	if !reflect.DeepEqual(svc.Document(), domain.Seed()) {
		t.Error("expected seed document after decode failure")
	}
}

func TestService_Open_LoadsPersistedDocument(t *testing.T) {
	want := domain.Document{
		Wallets: []domain.Wallet{{ID: "w9", Name: "Vault", Balance: decimal.NewFromInt(42), Currency: "USD"}},
		Budget:  decimal.NewFromInt(1000),
	}
	data, err := snapshot.Encode(want)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	snapshots := mocks.NewMockSnapshotStore()
	if err := snapshots.Save(context.Background(), data); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	svc := newService(snapshots)
	if err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if !reflect.DeepEqual(svc.Document(), want) {
		t.Error("loaded document differs from persisted one")
	}
}

func TestService_MutationPersistsSnapshot(t *testing.T) {
	snapshots := mocks.NewMockSnapshotStore()
	svc := newService(snapshots)
	if err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	tx, err := svc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
		Description: "Payout",
		Amount:      decimal.NewFromInt(500),
		Type:        domain.TransactionTypeIncome,
		SubCategory: domain.SubCategoryBusiness,
		WalletID:    "w1",
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}

	stored, err := snapshot.Decode(snapshots.Stored())
	if err != nil {
		t.Fatalf("stored snapshot does not decode: %v", err)
	}
	if stored.Transactions[0].ID != tx.ID {
		t.Error("persisted snapshot is missing the new transaction")
	}
	if !reflect.DeepEqual(stored, svc.Document()) {
		t.Error("persisted snapshot differs from the published version")
	}
}

func TestService_SaveFailureKeepsPreviousVersion(t *testing.T) {
	snapshots := mocks.NewMockSnapshotStore()
	svc := newService(snapshots)
	if err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	before := svc.Document()

	snapshots.SaveFunc = func(ctx context.Context, data []byte) error {
		return errors.New("store unavailable")
	}

	_, err := svc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
		Amount: decimal.NewFromInt(500), Type: domain.TransactionTypeIncome, WalletID: "w1",
	})
	if err == nil {
		t.Fatal("expected save failure to surface")
	}
	if !reflect.DeepEqual(svc.Document(), before) {
		t.Error("failed save must not publish the new version")
	}
}

func TestService_RejectionDoesNotSave(t *testing.T) {
	snapshots := mocks.NewMockSnapshotStore()
	svc := newService(snapshots)
	if err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	saves := snapshots.SaveCalls

	_, err := svc.Transfer(context.Background(), "w1", "w1", decimal.NewFromInt(10))
	if !errors.Is(err, domain.ErrSameWallet) {
		t.Fatalf("expected ErrSameWallet, got %v", err)
	}
	if snapshots.SaveCalls != saves {
		t.Error("rejected operation must not write a snapshot")
	}
}

func TestService_Import(t *testing.T) {
	snapshots := mocks.NewMockSnapshotStore()
	svc := newService(snapshots)
	if err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	t.Run("decode failure leaves state untouched", func(t *testing.T) {
		before := svc.Document()
		err := svc.Import(context.Background(), []byte("garbage"))
		if !errors.Is(err, domain.ErrDecode) {
			t.Fatalf("expected ErrDecode, got %v", err)
		}
		if !reflect.DeepEqual(svc.Document(), before) {
			t.Error("failed import changed the document")
		}
	})

	t.Run("successful import fully replaces", func(t *testing.T) {
		want := domain.Document{
			Wallets: []domain.Wallet{{ID: "only", Name: "Only", Balance: decimal.NewFromInt(7), Currency: "EUR"}},
			Budget:  decimal.NewFromInt(5),
		}
		data, err := snapshot.Encode(want)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		if err := svc.Import(context.Background(), data); err != nil {
			t.Fatalf("import failed: %v", err)
		}
		if !reflect.DeepEqual(svc.Document(), want) {
			t.Error("import must replace the whole document, not merge")
		}
	})
}

func TestService_Export(t *testing.T) {
	svc := newService(mocks.NewMockSnapshotStore())
	if err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	data, name, err := svc.Export()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if name != "DualStream_Backup_2024-06-01.json" {
		t.Errorf("unexpected export filename %q", name)
	}

	doc, err := snapshot.Decode(data)
	if err != nil {
		t.Fatalf("exported data does not decode: %v", err)
	}
	if !reflect.DeepEqual(doc, svc.Document()) {
		t.Error("export must round-trip to the current document")
	}
	if !strings.HasSuffix(name, ".json") {
		t.Error("export should be a json artifact")
	}
}

func TestService_DocumentIsACopy(t *testing.T) {
	svc := newService(mocks.NewMockSnapshotStore())
	if err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	held := svc.Document()
	held.Wallets[0].Balance = decimal.NewFromInt(-1)
	held.Transactions = nil

	fresh := svc.Document()
	if !reflect.DeepEqual(fresh, domain.Seed()) {
		t.Error("mutating a returned document must not affect the service's state")
	}
}
