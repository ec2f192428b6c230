package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/config"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// Storage bundles the pooled database with the table gateways used for reads.
// Writes go through Write, which hands out a transaction-scoped Writer.
type Storage struct {
	DB           bob.DB
	Users        sqlconfig.IUserTable
	Income       sqlconfig.IIncomeTable
	Expenses     sqlconfig.IExpenseTable
	Budgets      sqlconfig.IBudgetTable
	SavingsGoals sqlconfig.ISavingsGoalTable
	Transactions sqlconfig.ITransactionTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		log.Fatal(err)
	}

	bobDB := bob.NewDB(db)

	return &Storage{
		DB:           bobDB,
		Users:        sqlconfig.NewUsersTable(bobDB),
		Income:       sqlconfig.NewIncomeTable(bobDB),
		Expenses:     sqlconfig.NewExpensesTable(bobDB),
		Budgets:      sqlconfig.NewBudgetsTable(bobDB),
		SavingsGoals: sqlconfig.NewSavingsGoalsTable(bobDB),
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
	}
}

// Write opens a transaction and returns a Writer whose gateways all run on it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
