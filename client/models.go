package client

// User is a FinTrack account as the API serializes it.
type User struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// Credentials is the login/signup result: a bearer token plus its account.
type Credentials struct {
	JWT  string `json:"jwt"`
	User User   `json:"user"`
}

// Income is an income record. Amounts are decimal strings and dates are
// YYYY-MM-DD, matching the wire format.
type Income struct {
	IncomeID     int64  `json:"income_id"`
	UserID       int64  `json:"user_id"`
	Amount       string `json:"amount"`
	Source       string `json:"source"`
	DateReceived string `json:"date_received"`
	CreatedAt    string `json:"created_at"`
}

// IncomeCreate is one record in a batch create.
type IncomeCreate struct {
	Amount       string `json:"amount"`
	Source       string `json:"source"`
	DateReceived string `json:"date_received"`
}

// IncomePatch is one partial update in a batch. Nil fields are left
// unchanged.
type IncomePatch struct {
	IncomeID     int64   `json:"income_id"`
	Amount       *string `json:"amount,omitempty"`
	Source       *string `json:"source,omitempty"`
	DateReceived *string `json:"date_received,omitempty"`
}

// Expense is an expense record.
type Expense struct {
	ExpenseID   int64  `json:"expense_id"`
	UserID      int64  `json:"user_id"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	DateSpent   string `json:"date_spent"`
	CreatedAt   string `json:"created_at"`
}

// ExpenseCreate is one record in a batch create.
type ExpenseCreate struct {
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	DateSpent   string `json:"date_spent"`
}

// ExpensePatch is one partial update in a batch.
type ExpensePatch struct {
	ExpenseID   int64   `json:"expense_id"`
	Amount      *string `json:"amount,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	DateSpent   *string `json:"date_spent,omitempty"`
}

// Budget is a budget record.
type Budget struct {
	BudgetID  int64  `json:"budget_id"`
	UserID    int64  `json:"user_id"`
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CreatedAt string `json:"created_at"`
}

// BudgetCreate is one record in a batch create.
type BudgetCreate struct {
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// BudgetPatch is one partial update in a batch.
type BudgetPatch struct {
	BudgetID  int64   `json:"budget_id"`
	Category  *string `json:"category,omitempty"`
	Amount    *string `json:"amount,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

// SavingsGoal is a savings goal record. Deadline is nil when open-ended.
type SavingsGoal struct {
	GoalID       int64   `json:"goal_id"`
	UserID       int64   `json:"user_id"`
	GoalName     string  `json:"goal_name"`
	TargetAmount string  `json:"target_amount"`
	SavedAmount  string  `json:"saved_amount"`
	Deadline     *string `json:"deadline"`
	CreatedAt    string  `json:"created_at"`
}

// SavingsGoalCreate is one record in a batch create.
type SavingsGoalCreate struct {
	GoalName     string  `json:"goal_name"`
	TargetAmount string  `json:"target_amount"`
	SavedAmount  *string `json:"saved_amount,omitempty"`
	Deadline     *string `json:"deadline,omitempty"`
}

// SavingsGoalPatch is one partial update in a batch. Setting Deadline to an
// empty string clears it on the server.
type SavingsGoalPatch struct {
	GoalID       int64   `json:"goal_id"`
	GoalName     *string `json:"goal_name,omitempty"`
	TargetAmount *string `json:"target_amount,omitempty"`
	SavedAmount  *string `json:"saved_amount,omitempty"`
	Deadline     *string `json:"deadline,omitempty"`
}

// Transaction is a ledger entry the client records alongside income and
// expense writes.
type Transaction struct {
	TransactionID   int64  `json:"transaction_id"`
	UserID          int64  `json:"user_id"`
	Type            string `json:"type"`
	ReferenceID     int64  `json:"reference_id"`
	Amount          string `json:"amount"`
	TransactionDate string `json:"transaction_date"`
	CreatedAt       string `json:"created_at"`
}

// TransactionCreate is one record in a batch create.
type TransactionCreate struct {
	Type            string `json:"type"`
	ReferenceID     int64  `json:"reference_id"`
	Amount          string `json:"amount"`
	TransactionDate string `json:"transaction_date"`
}

// TransactionPatch is one partial update in a batch.
type TransactionPatch struct {
	TransactionID   int64   `json:"transaction_id"`
	Type            *string `json:"type,omitempty"`
	ReferenceID     *int64  `json:"reference_id,omitempty"`
	Amount          *string `json:"amount,omitempty"`
	TransactionDate *string `json:"transaction_date,omitempty"`
}
