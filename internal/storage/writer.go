package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// Writer is a transaction-scoped view of the schema. Everything performed
// through it is applied atomically on Commit or discarded on Rollback.
type Writer struct {
	tx           bob.Tx
	Users        sqlconfig.IUserTable
	Income       sqlconfig.IIncomeTable
	Expenses     sqlconfig.IExpenseTable
	Budgets      sqlconfig.IBudgetTable
	SavingsGoals sqlconfig.ISavingsGoalTable
	Transactions sqlconfig.ITransactionTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Users:        sqlconfig.NewUsersTable(tx),
		Income:       sqlconfig.NewIncomeTable(tx),
		Expenses:     sqlconfig.NewExpensesTable(tx),
		Budgets:      sqlconfig.NewBudgetsTable(tx),
		SavingsGoals: sqlconfig.NewSavingsGoalsTable(tx),
		Transactions: sqlconfig.NewTransactionsTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
