package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/dualstream/internal/domain"
)

// dateLayout is the civil date format used for transaction dates.
const dateLayout = "2006-01-02"

// Engine implements the ledger state transitions. Every operation is a
// pure function of (current document, input): it returns a fresh
// document and never mutates its argument, so a rejected operation
// leaves the caller's document untouched. The engine never logs,
// retries or persists; those concerns belong to the caller.
type Engine struct {
	idGen IDGenerator
	clock Clock
}

// NewEngine creates a new Engine.
func NewEngine(idGen IDGenerator, clock Clock) *Engine {
	return &Engine{
		idGen: idGen,
		clock: clock,
	}
}

// RecordTransactionInput represents input for recording a transaction.
type RecordTransactionInput struct {
	Date        string
	Description string
	Amount      decimal.Decimal
	Type        domain.TransactionType
	ProjectTag  string
	SubCategory domain.SubCategory
	WalletID    string
	Notes       string
}

// RecordTransaction appends a transaction and adjusts the referenced
// wallet's balance by the transaction's signed amount.
func (e *Engine) RecordTransaction(doc domain.Document, input RecordTransactionInput) (domain.Document, domain.Transaction, error) {
	if !input.Amount.IsPositive() {
		return domain.Document{}, domain.Transaction{}, domain.ErrInvalidAmount
	}

	idx := doc.WalletIndex(input.WalletID)
	if idx < 0 {
		return domain.Document{}, domain.Transaction{}, domain.ErrUnknownWallet
	}

	date := input.Date
	if date == "" {
		date = e.clock.Now().Format(dateLayout)
	}

	tx := domain.Transaction{
		ID:          e.idGen.Generate(),
		Date:        date,
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		ProjectTag:  input.ProjectTag,
		SubCategory: input.SubCategory,
		WalletID:    input.WalletID,
		Notes:       input.Notes,
	}

	next := doc.Clone()
	next.Wallets[idx].Balance = next.Wallets[idx].Balance.Add(tx.Signed())
	next.Transactions = append([]domain.Transaction{tx}, next.Transactions...)

	return next, tx, nil
}

// Transfer moves amount from one wallet to another. It debits the
// source, credits the destination and records one synthetic Expense
// transaction against the source wallet. The three effects are applied
// together or not at all; any rejection returns the input document
// unchanged. The destination side carries no transaction record of its
// own, only the balance change.
func (e *Engine) Transfer(doc domain.Document, fromID, toID string, amount decimal.Decimal) (domain.Document, domain.Transaction, error) {
	if !amount.IsPositive() {
		return domain.Document{}, domain.Transaction{}, domain.ErrInvalidAmount
	}
	if fromID == toID {
		return domain.Document{}, domain.Transaction{}, domain.ErrSameWallet
	}

	fromIdx := doc.WalletIndex(fromID)
	toIdx := doc.WalletIndex(toID)
	if fromIdx < 0 || toIdx < 0 {
		return domain.Document{}, domain.Transaction{}, domain.ErrUnknownWallet
	}

	from := doc.Wallets[fromIdx]
	to := doc.Wallets[toIdx]
	if !from.CanDebit(amount) {
		return domain.Document{}, domain.Transaction{}, domain.ErrInsufficientFunds
	}

	tx := domain.Transaction{
		ID:          e.idGen.Generate(),
		Date:        e.clock.Now().Format(dateLayout),
		Description: fmt.Sprintf("Transfer: %s -> %s", from.Name, to.Name),
		Amount:      amount,
		Type:        domain.TransactionTypeExpense,
		ProjectTag:  domain.TransferProjectTag,
		SubCategory: domain.SubCategoryPersonal,
		WalletID:    fromID,
		Notes:       fmt.Sprintf("Moved to %s", to.Name),
	}

	next := doc.Clone()
	next.Wallets[fromIdx].Balance = next.Wallets[fromIdx].Balance.Sub(amount)
	next.Wallets[toIdx].Balance = next.Wallets[toIdx].Balance.Add(amount)
	next.Transactions = append([]domain.Transaction{tx}, next.Transactions...)

	return next, tx, nil
}

// AddWalletInput represents input for creating a wallet.
type AddWalletInput struct {
	Name     string
	Balance  decimal.Decimal
	Icon     string
	Currency string
}

// AddWallet appends a freshly-identified wallet.
func (e *Engine) AddWallet(doc domain.Document, input AddWalletInput) (domain.Document, domain.Wallet, error) {
	wallet := domain.Wallet{
		ID:       e.idGen.Generate(),
		Name:     input.Name,
		Balance:  input.Balance,
		Icon:     input.Icon,
		Currency: input.Currency,
	}

	next := doc.Clone()
	next.Wallets = append(next.Wallets, wallet)

	return next, wallet, nil
}

// UpdateWalletInput carries the fields to merge into a wallet. Nil
// fields are left unchanged.
type UpdateWalletInput struct {
	Name     *string
	Balance  *decimal.Decimal
	Icon     *string
	Currency *string
}

// UpdateWallet merges the given fields into the named wallet. Setting
// Balance is an explicit manual override: it bypasses the
// transaction-derived balance and there is no reconciliation afterward.
func (e *Engine) UpdateWallet(doc domain.Document, id string, input UpdateWalletInput) (domain.Document, domain.Wallet, error) {
	idx := doc.WalletIndex(id)
	if idx < 0 {
		return domain.Document{}, domain.Wallet{}, domain.ErrUnknownWallet
	}

	next := doc.Clone()
	w := &next.Wallets[idx]
	if input.Name != nil {
		w.Name = *input.Name
	}
	if input.Balance != nil {
		w.Balance = *input.Balance
	}
	if input.Icon != nil {
		w.Icon = *input.Icon
	}
	if input.Currency != nil {
		w.Currency = *input.Currency
	}

	return next, *w, nil
}

// DeleteWallet removes the wallet. Transactions referencing it are
// kept as-is and become orphaned references; they are not repaired or
// cascaded. This is destructive and the caller must have confirmed the
// deletion before invoking it.
func (e *Engine) DeleteWallet(doc domain.Document, id string) (domain.Document, error) {
	idx := doc.WalletIndex(id)
	if idx < 0 {
		return domain.Document{}, domain.ErrUnknownWallet
	}

	next := doc.Clone()
	next.Wallets = append(next.Wallets[:idx], next.Wallets[idx+1:]...)

	return next, nil
}

// AddProjectInput represents input for creating a project.
type AddProjectInput struct {
	StoreName        string
	Notes            string
	Comments         string
	Date             string
	ServicesRequired string
}

// AddProject prepends a freshly-identified project.
func (e *Engine) AddProject(doc domain.Document, input AddProjectInput) (domain.Document, domain.Project, error) {
	project := domain.Project{
		ID:               e.idGen.Generate(),
		StoreName:        input.StoreName,
		Notes:            input.Notes,
		Comments:         input.Comments,
		Date:             input.Date,
		ServicesRequired: input.ServicesRequired,
	}

	next := doc.Clone()
	next.Projects = append([]domain.Project{project}, next.Projects...)

	return next, project, nil
}

// AddInvestmentInput represents input for creating an investment.
type AddInvestmentInput struct {
	Type      domain.InvestmentType
	Platform  string
	AssetName string
	Quantity  decimal.Decimal
	ValuePKR  decimal.Decimal
	Date      string
}

// AddInvestment prepends a freshly-identified investment.
func (e *Engine) AddInvestment(doc domain.Document, input AddInvestmentInput) (domain.Document, domain.Investment, error) {
	investment := domain.Investment{
		ID:        e.idGen.Generate(),
		Type:      input.Type,
		Platform:  input.Platform,
		AssetName: input.AssetName,
		Quantity:  input.Quantity,
		ValuePKR:  input.ValuePKR,
		Date:      input.Date,
	}

	next := doc.Clone()
	next.Investments = append([]domain.Investment{investment}, next.Investments...)

	return next, investment, nil
}

// AddGoalInput represents input for creating a savings goal.
type AddGoalInput struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      string
}

// AddGoal appends a freshly-identified goal.
func (e *Engine) AddGoal(doc domain.Document, input AddGoalInput) (domain.Document, domain.Goal, error) {
	goal := domain.Goal{
		ID:            e.idGen.Generate(),
		Name:          input.Name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		Deadline:      input.Deadline,
	}

	next := doc.Clone()
	next.Goals = append(next.Goals, goal)

	return next, goal, nil
}

// UpdateGoalInput carries the fields to merge into a goal. Nil fields
// are left unchanged.
type UpdateGoalInput struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *string
}

// UpdateGoal merges the given fields into the named goal.
func (e *Engine) UpdateGoal(doc domain.Document, id string, input UpdateGoalInput) (domain.Document, domain.Goal, error) {
	idx := -1
	for i, g := range doc.Goals {
		if g.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Document{}, domain.Goal{}, domain.ErrGoalNotFound
	}

	next := doc.Clone()
	g := &next.Goals[idx]
	if input.Name != nil {
		g.Name = *input.Name
	}
	if input.TargetAmount != nil {
		g.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		g.CurrentAmount = *input.CurrentAmount
	}
	if input.Deadline != nil {
		g.Deadline = *input.Deadline
	}

	return next, *g, nil
}

// SetBudget replaces the document's budget scalar.
func (e *Engine) SetBudget(doc domain.Document, budget decimal.Decimal) (domain.Document, error) {
	if budget.IsNegative() {
		return domain.Document{}, domain.ErrInvalidAmount
	}

	next := doc.Clone()
	next.Budget = budget

	return next, nil
}
