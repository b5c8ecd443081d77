package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	TransactionsRecorded prometheus.Counter
	TransfersCreated     prometheus.Counter
	TransferErrors       *prometheus.CounterVec
	WalletOperations     *prometheus.CounterVec

	// Snapshot metrics
	SnapshotSaves      prometheus.Counter
	SnapshotSaveErrors prometheus.Counter
	SnapshotLoadFalls  prometheus.Counter
	ImportsApplied     prometheus.Counter
	ExportsServed      prometheus.Counter
	DecodeFailures     prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransactionsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dualstream_transactions_recorded_total",
			Help: "Total number of transactions recorded",
		}),
		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dualstream_transfers_created_total",
			Help: "Total number of inter-wallet transfers",
		}),
		TransferErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dualstream_transfer_errors_total",
				Help: "Total number of rejected transfers by reason",
			},
			[]string{"reason"},
		),
		WalletOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dualstream_wallet_operations_total",
				Help: "Total wallet operations by type",
			},
			[]string{"operation"},
		),
		SnapshotSaves: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dualstream_snapshot_saves_total",
			Help: "Total document snapshots written to the store",
		}),
		SnapshotSaveErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dualstream_snapshot_save_errors_total",
			Help: "Total snapshot writes that failed after retries",
		}),
		SnapshotLoadFalls: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dualstream_snapshot_load_fallbacks_total",
			Help: "Total startups that fell back to the seed document",
		}),
		ImportsApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dualstream_imports_applied_total",
			Help: "Total full-document imports applied",
		}),
		ExportsServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dualstream_exports_served_total",
			Help: "Total document exports produced",
		}),
		DecodeFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dualstream_decode_failures_total",
			Help: "Total snapshot decode failures",
		}),
	}
}
