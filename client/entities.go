package client

import (
	"context"
	"net/http"
	"strconv"
)

// IncomeClient provides typed round-trips for /api/income.
type IncomeClient struct {
	c *Client
}

// Income returns the income entity client.
func (c *Client) Income() *IncomeClient {
	return &IncomeClient{c: c}
}

func (e *IncomeClient) ListAll(ctx context.Context) ([]Income, error) {
	return roundTrip[[]Income](ctx, e.c, http.MethodGet, "/api/income/get_all_incomes", nil, nil)
}

func (e *IncomeClient) GetOne(ctx context.Context, id int64) (Income, error) {
	return roundTrip[Income](ctx, e.c, http.MethodGet, "/api/income/get_income/"+strconv.FormatInt(id, 10), nil, nil)
}

func (e *IncomeClient) Get(ctx context.Context, ids []int64) ([]Income, error) {
	return roundTrip[[]Income](ctx, e.c, http.MethodGet, "/api/income/get_incomes", idsQuery(ids), nil)
}

func (e *IncomeClient) Create(ctx context.Context, creates []IncomeCreate) ([]Income, error) {
	body := map[string][]IncomeCreate{"incomes": creates}
	return roundTrip[[]Income](ctx, e.c, http.MethodPost, "/api/income/post_income", nil, body)
}

func (e *IncomeClient) Update(ctx context.Context, patches []IncomePatch) ([]Income, error) {
	body := map[string][]IncomePatch{"incomes": patches}
	return roundTrip[[]Income](ctx, e.c, http.MethodPut, "/api/income/put_income", nil, body)
}

func (e *IncomeClient) Delete(ctx context.Context, id int64) (int64, error) {
	return roundTrip[int64](ctx, e.c, http.MethodDelete, "/api/income/delete_income/"+strconv.FormatInt(id, 10), nil, nil)
}

func (e *IncomeClient) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	return roundTrip[int64](ctx, e.c, http.MethodDelete, "/api/income/delete_incomes", idsQuery(ids), nil)
}

// ExpenseClient provides typed round-trips for /api/expense.
type ExpenseClient struct {
	c *Client
}

// Expenses returns the expense entity client.
func (c *Client) Expenses() *ExpenseClient {
	return &ExpenseClient{c: c}
}

func (e *ExpenseClient) ListAll(ctx context.Context) ([]Expense, error) {
	return roundTrip[[]Expense](ctx, e.c, http.MethodGet, "/api/expense/get_all_expenses", nil, nil)
}

func (e *ExpenseClient) GetOne(ctx context.Context, id int64) (Expense, error) {
	return roundTrip[Expense](ctx, e.c, http.MethodGet, "/api/expense/get_expense/"+strconv.FormatInt(id, 10), nil, nil)
}

func (e *ExpenseClient) Get(ctx context.Context, ids []int64) ([]Expense, error) {
	return roundTrip[[]Expense](ctx, e.c, http.MethodGet, "/api/expense/get_expenses", idsQuery(ids), nil)
}

func (e *ExpenseClient) Create(ctx context.Context, creates []ExpenseCreate) ([]Expense, error) {
	body := map[string][]ExpenseCreate{"expenses": creates}
	return roundTrip[[]Expense](ctx, e.c, http.MethodPost, "/api/expense/post_expense", nil, body)
}

func (e *ExpenseClient) Update(ctx context.Context, patches []ExpensePatch) ([]Expense, error) {
	body := map[string][]ExpensePatch{"expenses": patches}
	return roundTrip[[]Expense](ctx, e.c, http.MethodPut, "/api/expense/put_expense", nil, body)
}

func (e *ExpenseClient) Delete(ctx context.Context, id int64) (int64, error) {
	return roundTrip[int64](ctx, e.c, http.MethodDelete, "/api/expense/delete_expense/"+strconv.FormatInt(id, 10), nil, nil)
}

func (e *ExpenseClient) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	return roundTrip[int64](ctx, e.c, http.MethodDelete, "/api/expense/delete_expenses", idsQuery(ids), nil)
}

// BudgetClient provides typed round-trips for /api/budget.
type BudgetClient struct {
	c *Client
}

// Budgets returns the budget entity client.
func (c *Client) Budgets() *BudgetClient {
	return &BudgetClient{c: c}
}

func (e *BudgetClient) ListAll(ctx context.Context) ([]Budget, error) {
	return roundTrip[[]Budget](ctx, e.c, http.MethodGet, "/api/budget/get_all_budgets", nil, nil)
}

func (e *BudgetClient) GetOne(ctx context.Context, id int64) (Budget, error) {
	return roundTrip[Budget](ctx, e.c, http.MethodGet, "/api/budget/get_budget/"+strconv.FormatInt(id, 10), nil, nil)
}

func (e *BudgetClient) Get(ctx context.Context, ids []int64) ([]Budget, error) {
	return roundTrip[[]Budget](ctx, e.c, http.MethodGet, "/api/budget/get_budgets", idsQuery(ids), nil)
}

func (e *BudgetClient) Create(ctx context.Context, creates []BudgetCreate) ([]Budget, error) {
	body := map[string][]BudgetCreate{"budgets": creates}
	return roundTrip[[]Budget](ctx, e.c, http.MethodPost, "/api/budget/post_budget", nil, body)
}

func (e *BudgetClient) Update(ctx context.Context, patches []BudgetPatch) ([]Budget, error) {
	body := map[string][]BudgetPatch{"budgets": patches}
	return roundTrip[[]Budget](ctx, e.c, http.MethodPut, "/api/budget/put_budget", nil, body)
}

func (e *BudgetClient) Delete(ctx context.Context, id int64) (int64, error) {
	return roundTrip[int64](ctx, e.c, http.MethodDelete, "/api/budget/delete_budget/"+strconv.FormatInt(id, 10), nil, nil)
}

func (e *BudgetClient) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	return roundTrip[int64](ctx, e.c, http.MethodDelete, "/api/budget/delete_budgets", idsQuery(ids), nil)
}

// SavingsGoalClient provides typed round-trips for /api/savings_goals.
type SavingsGoalClient struct {
	c *Client
}

// SavingsGoals returns the savings goal entity client.
func (c *Client) SavingsGoals() *SavingsGoalClient {
	return &SavingsGoalClient{c: c}
}

func (e *SavingsGoalClient) ListAll(ctx context.Context) ([]SavingsGoal, error) {
	return roundTrip[[]SavingsGoal](ctx, e.c, http.MethodGet, "/api/savings_goals/get_all_goals", nil, nil)
}

func (e *SavingsGoalClient) GetOne(ctx context.Context, id int64) (SavingsGoal, error) {
	return roundTrip[SavingsGoal](ctx, e.c, http.MethodGet, "/api/savings_goals/get_goal/"+strconv.FormatInt(id, 10), nil, nil)
}

func (e *SavingsGoalClient) Get(ctx context.Context, ids []int64) ([]SavingsGoal, error) {
	return roundTrip[[]SavingsGoal](ctx, e.c, http.MethodGet, "/api/savings_goals/get_goals", idsQuery(ids), nil)
}

func (e *SavingsGoalClient) Create(ctx context.Context, creates []SavingsGoalCreate) ([]SavingsGoal, error) {
	body := map[string][]SavingsGoalCreate{"savings_goals": creates}
	return roundTrip[[]SavingsGoal](ctx, e.c, http.MethodPost, "/api/savings_goals/post_goal", nil, body)
}

func (e *SavingsGoalClient) Update(ctx context.Context, patches []SavingsGoalPatch) ([]SavingsGoal, error) {
	body := map[string][]SavingsGoalPatch{"savings_goals": patches}
	return roundTrip[[]SavingsGoal](ctx, e.c, http.MethodPut, "/api/savings_goals/put_goal", nil, body)
}

func (e *SavingsGoalClient) Delete(ctx context.Context, id int64) (int64, error) {
	return roundTrip[int64](ctx, e.c, http.MethodDelete, "/api/savings_goals/delete_goal/"+strconv.FormatInt(id, 10), nil, nil)
}

func (e *SavingsGoalClient) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	return roundTrip[int64](ctx, e.c, http.MethodDelete, "/api/savings_goals/delete_goals", idsQuery(ids), nil)
}

// TransactionClient provides typed round-trips for /api/transaction.
type TransactionClient struct {
	c *Client
}

// Transactions returns the transaction entity client.
func (c *Client) Transactions() *TransactionClient {
	return &TransactionClient{c: c}
}

func (e *TransactionClient) ListAll(ctx context.Context) ([]Transaction, error) {
	return roundTrip[[]Transaction](ctx, e.c, http.MethodGet, "/api/transaction/get_all_transactions", nil, nil)
}

func (e *TransactionClient) GetOne(ctx context.Context, id int64) (Transaction, error) {
	return roundTrip[Transaction](ctx, e.c, http.MethodGet, "/api/transaction/get_transaction/"+strconv.FormatInt(id, 10), nil, nil)
}

func (e *TransactionClient) Get(ctx context.Context, ids []int64) ([]Transaction, error) {
	return roundTrip[[]Transaction](ctx, e.c, http.MethodGet, "/api/transaction/get_transactions", idsQuery(ids), nil)
}

func (e *TransactionClient) Create(ctx context.Context, creates []TransactionCreate) ([]Transaction, error) {
	body := map[string][]TransactionCreate{"transactions": creates}
	return roundTrip[[]Transaction](ctx, e.c, http.MethodPost, "/api/transaction/post_transaction", nil, body)
}

func (e *TransactionClient) Update(ctx context.Context, patches []TransactionPatch) ([]Transaction, error) {
	body := map[string][]TransactionPatch{"transactions": patches}
	return roundTrip[[]Transaction](ctx, e.c, http.MethodPut, "/api/transaction/put_transaction", nil, body)
}

func (e *TransactionClient) Delete(ctx context.Context, id int64) (int64, error) {
	return roundTrip[int64](ctx, e.c, http.MethodDelete, "/api/transaction/delete_transaction/"+strconv.FormatInt(id, 10), nil, nil)
}

func (e *TransactionClient) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	return roundTrip[int64](ctx, e.c, http.MethodDelete, "/api/transaction/delete_transactions", idsQuery(ids), nil)
}
