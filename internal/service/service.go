package service

import (
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Auth         *AuthService
	Users        *UserService
	Income       *IncomeService
	Expenses     *ExpenseService
	Budgets      *BudgetService
	SavingsGoals *SavingsGoalService
	Transactions *TransactionService
}

// NewService creates a new Service with the given storage and write operator.
func NewService(store *storage.Storage, op operator.IOperatorDelegator, jwtSecret []byte) *Service {
	return &Service{
		Auth:         NewAuthService(store, op, jwtSecret),
		Users:        NewUserService(store, op),
		Income:       NewIncomeService(store, op),
		Expenses:     NewExpenseService(store, op),
		Budgets:      NewBudgetService(store, op),
		SavingsGoals: NewSavingsGoalService(store, op),
		Transactions: NewTransactionService(store, op),
	}
}
