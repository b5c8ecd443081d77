package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/dualstream/internal/adapter/store"
	"github.com/iho/dualstream/internal/domain"
	"github.com/iho/dualstream/internal/infrastructure/metrics"
	"github.com/iho/dualstream/internal/snapshot"
)

// SnapshotStore is the persistence the service needs: one blob in, one
// blob out, under a fixed key.
type SnapshotStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Service owns the current document version and composes the pieces the
// engine deliberately does not: loading the persisted snapshot at
// startup (with seed fallback), persisting after every successful
// mutation, and serializing mutations. Engine operations are not
// designed to interleave, so a single mutex guards the whole
// apply-encode-save sequence.
//
// A mutation is published only after its snapshot is durably saved; on
// save failure the previous version stays current and the error is
// returned to the caller.
type Service struct {
	mu      sync.Mutex
	engine  *Engine
	store   SnapshotStore
	logger  zerolog.Logger
	metrics *metrics.Metrics
	doc     domain.Document
}

// NewService creates a new Service. metrics may be nil.
func NewService(engine *Engine, snapshots SnapshotStore, logger zerolog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		engine:  engine,
		store:   snapshots,
		logger:  logger,
		metrics: m,
	}
}

// Open loads the persisted document. A missing snapshot or one that
// fails to decode falls back to the seed document rather than failing
// startup; the broken blob is left in place for inspection.
func (s *Service) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.logger.Info().Msg("no persisted document, starting from seed")
		s.doc = domain.Seed()
		s.countLoadFallback()
		return nil
	case err != nil:
		return fmt.Errorf("load snapshot: %w", err)
	}

	doc, err := snapshot.Decode(data)
	if err != nil {
		s.logger.Warn().Err(err).Msg("persisted document failed to decode, falling back to seed")
		s.doc = domain.Seed()
		s.countLoadFallback()
		if s.metrics != nil {
			s.metrics.DecodeFailures.Inc()
		}
		return nil
	}

	s.doc = doc
	s.logger.Info().
		Int("transactions", len(doc.Transactions)).
		Int("wallets", len(doc.Wallets)).
		Msg("document loaded")

	return nil
}

// Document returns the current document version. The returned value is
// a deep copy; it stays valid and immutable no matter how many
// mutations happen afterward.
func (s *Service) Document() domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// apply runs one engine operation and persists its result. The new
// version becomes current only if the save succeeds.
func (s *Service) apply(ctx context.Context, op func(domain.Document) (domain.Document, error)) error {
	next, err := op(s.doc)
	if err != nil {
		return err
	}

	data, err := snapshot.Encode(next)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.store.Save(ctx, data); err != nil {
		if s.metrics != nil {
			s.metrics.SnapshotSaveErrors.Inc()
		}
		return fmt.Errorf("save snapshot: %w", err)
	}
	if s.metrics != nil {
		s.metrics.SnapshotSaves.Inc()
	}

	s.doc = next
	return nil
}

// RecordTransaction records a transaction and persists the result.
func (s *Service) RecordTransaction(ctx context.Context, input RecordTransactionInput) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tx domain.Transaction
	err := s.apply(ctx, func(doc domain.Document) (domain.Document, error) {
		var err error
		doc, tx, err = s.engine.RecordTransaction(doc, input)
		return doc, err
	})
	if err != nil {
		return domain.Transaction{}, err
	}

	if s.metrics != nil {
		s.metrics.TransactionsRecorded.Inc()
	}
	s.logger.Info().
		Str("transaction_id", tx.ID).
		Str("wallet_id", tx.WalletID).
		Str("type", string(tx.Type)).
		Msg("transaction recorded")

	return tx, nil
}

// Transfer moves funds between wallets and persists the result.
func (s *Service) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tx domain.Transaction
	err := s.apply(ctx, func(doc domain.Document) (domain.Document, error) {
		var err error
		doc, tx, err = s.engine.Transfer(doc, fromID, toID, amount)
		return doc, err
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.TransferErrors.WithLabelValues(transferReason(err)).Inc()
		}
		return domain.Transaction{}, err
	}

	if s.metrics != nil {
		s.metrics.TransfersCreated.Inc()
	}
	s.logger.Info().
		Str("from", fromID).
		Str("to", toID).
		Str("amount", amount.String()).
		Msg("transfer completed")

	return tx, nil
}

// AddWallet creates a wallet and persists the result.
func (s *Service) AddWallet(ctx context.Context, input AddWalletInput) (domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var wallet domain.Wallet
	err := s.apply(ctx, func(doc domain.Document) (domain.Document, error) {
		var err error
		doc, wallet, err = s.engine.AddWallet(doc, input)
		return doc, err
	})
	if err != nil {
		return domain.Wallet{}, err
	}

	s.countWalletOp("add")
	return wallet, nil
}

// UpdateWallet merges fields into a wallet and persists the result.
func (s *Service) UpdateWallet(ctx context.Context, id string, input UpdateWalletInput) (domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var wallet domain.Wallet
	err := s.apply(ctx, func(doc domain.Document) (domain.Document, error) {
		var err error
		doc, wallet, err = s.engine.UpdateWallet(doc, id, input)
		return doc, err
	})
	if err != nil {
		return domain.Wallet{}, err
	}

	s.countWalletOp("update")
	return wallet, nil
}

// DeleteWallet removes a wallet and persists the result. The caller is
// responsible for having confirmed this destructive operation.
func (s *Service) DeleteWallet(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.apply(ctx, func(doc domain.Document) (domain.Document, error) {
		return s.engine.DeleteWallet(doc, id)
	})
	if err != nil {
		return err
	}

	s.countWalletOp("delete")
	s.logger.Info().Str("wallet_id", id).Msg("wallet deleted")
	return nil
}

// AddProject creates a project and persists the result.
func (s *Service) AddProject(ctx context.Context, input AddProjectInput) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var project domain.Project
	err := s.apply(ctx, func(doc domain.Document) (domain.Document, error) {
		var err error
		doc, project, err = s.engine.AddProject(doc, input)
		return doc, err
	})
	if err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

// AddInvestment creates an investment and persists the result.
func (s *Service) AddInvestment(ctx context.Context, input AddInvestmentInput) (domain.Investment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var investment domain.Investment
	err := s.apply(ctx, func(doc domain.Document) (domain.Document, error) {
		var err error
		doc, investment, err = s.engine.AddInvestment(doc, input)
		return doc, err
	})
	if err != nil {
		return domain.Investment{}, err
	}
	return investment, nil
}

// AddGoal creates a goal and persists the result.
func (s *Service) AddGoal(ctx context.Context, input AddGoalInput) (domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var goal domain.Goal
	err := s.apply(ctx, func(doc domain.Document) (domain.Document, error) {
		var err error
		doc, goal, err = s.engine.AddGoal(doc, input)
		return doc, err
	})
	if err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

// UpdateGoal merges fields into a goal and persists the result.
func (s *Service) UpdateGoal(ctx context.Context, id string, input UpdateGoalInput) (domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var goal domain.Goal
	err := s.apply(ctx, func(doc domain.Document) (domain.Document, error) {
		var err error
		doc, goal, err = s.engine.UpdateGoal(doc, id, input)
		return doc, err
	})
	if err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

// SetBudget replaces the budget scalar and persists the result.
func (s *Service) SetBudget(ctx context.Context, budget decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(ctx, func(doc domain.Document) (domain.Document, error) {
		return s.engine.SetBudget(doc, budget)
	})
}

// Export returns the encoded current document and the dated backup
// filename. Export never mutates state.
func (s *Service) Export() ([]byte, string, error) {
	s.mu.Lock()
	doc := s.doc.Clone()
	s.mu.Unlock()

	data, err := snapshot.Encode(doc)
	if err != nil {
		return nil, "", err
	}
	if s.metrics != nil {
		s.metrics.ExportsServed.Inc()
	}

	name := fmt.Sprintf("DualStream_Backup_%s.json", s.engine.clock.Now().Format(dateLayout))
	return data, name, nil
}

// Import replaces the entire current document with the decoded input
// and persists it. A decode failure surfaces domain.ErrDecode and
// leaves the current document untouched. The caller is responsible for
// having confirmed the overwrite.
func (s *Service) Import(ctx context.Context, data []byte) error {
	doc, err := snapshot.Decode(data)
	if err != nil {
		if s.metrics != nil {
			s.metrics.DecodeFailures.Inc()
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.apply(ctx, func(domain.Document) (domain.Document, error) {
		return doc, nil
	})
	if err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.ImportsApplied.Inc()
	}
	s.logger.Info().
		Int("transactions", len(doc.Transactions)).
		Int("wallets", len(doc.Wallets)).
		Msg("document imported")

	return nil
}

func (s *Service) countWalletOp(op string) {
	if s.metrics != nil {
		s.metrics.WalletOperations.WithLabelValues(op).Inc()
	}
}

func (s *Service) countLoadFallback() {
	if s.metrics != nil {
		s.metrics.SnapshotLoadFalls.Inc()
	}
}

func transferReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrSameWallet):
		return "same_wallet"
	case errors.Is(err, domain.ErrUnknownWallet):
		return "unknown_wallet"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	default:
		return "other"
	}
}
