package domain

import "github.com/shopspring/decimal"

// Document is the aggregate root: the full financial state persisted,
// exported and imported as one atomic whole. Transactions are ordered
// most-recent-first and that order is meaningful; the other collections
// are unordered sets keyed by id.
//
// Documents have value semantics. Every ledger operation produces a new
// Document; holders of an older version simply see a stale snapshot,
// never a torn one.
type Document struct {
	Transactions []Transaction   `json:"transactions"`
	Projects     []Project       `json:"projects"`
	Wallets      []Wallet        `json:"wallets"`
	Goals        []Goal          `json:"goals"`
	Investments  []Investment    `json:"investments"`
	Budget       decimal.Decimal `json:"budget"`
}

// Clone returns a deep copy of the document. Element types are immutable
// values, so copying the slices is sufficient.
func (d Document) Clone() Document {
	out := d
	out.Transactions = append([]Transaction(nil), d.Transactions...)
	out.Projects = append([]Project(nil), d.Projects...)
	out.Wallets = append([]Wallet(nil), d.Wallets...)
	out.Goals = append([]Goal(nil), d.Goals...)
	out.Investments = append([]Investment(nil), d.Investments...)
	return out
}

// WalletIndex returns the position of the wallet with the given id,
// or -1 if no such wallet exists.
func (d Document) WalletIndex(id string) int {
	for i, w := range d.Wallets {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// Wallet returns the wallet with the given id.
func (d Document) Wallet(id string) (Wallet, bool) {
	if i := d.WalletIndex(id); i >= 0 {
		return d.Wallets[i], true
	}
	return Wallet{}, false
}

// WalletActivity returns the net signed flow of all transactions
// recorded against the wallet. Transfers contribute only their
// source-side debit; the destination side of a transfer has no
// transaction record and shows up only as a balance change.
func (d Document) WalletActivity(id string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range d.Transactions {
		if t.WalletID == id {
			total = total.Add(t.Signed())
		}
	}
	return total
}

// Orphans returns the transactions whose wallet id no longer resolves
// to a wallet in the document. Deleting a wallet leaves its
// transactions behind by design, so orphans are legal; this exists for
// consistency reporting.
func (d Document) Orphans() []Transaction {
	var orphans []Transaction
	for _, t := range d.Transactions {
		if d.WalletIndex(t.WalletID) < 0 {
			orphans = append(orphans, t)
		}
	}
	return orphans
}
