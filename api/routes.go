package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/authapi"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/budget"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/expense"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/income"
	savingsgoals "github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/savings_goals"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/status"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/transaction"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/users"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/service"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
)

type Rest struct {
	Logger    *logrus.Logger
	Port      string
	Service   *service.Service
	Storage   *storage.Storage
	JWTSecret []byte
}

// registrar is anything that can attach itself to the Huma API.
type registrar interface {
	Register(api huma.API)
}

// BuildAPI assembles the Huma API with middleware and every endpoint
// registered. Split out from Serve so tests can drive it without a listener.
func (r *Rest) BuildAPI(mux *http.ServeMux) huma.API {
	humaAPI := humago.New(mux, huma.DefaultConfig("FinTrack", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))
	humaAPI.UseMiddleware(auth.Middleware(humaAPI, r.JWTSecret, r.Storage.Users))

	registrars := []registrar{
		status.NewHandler(),

		authapi.NewSignupHandler(r.Service.Auth),
		authapi.NewLoginHandler(r.Service.Auth),
		authapi.NewProbeHandler(),

		users.NewCreateUsersHandler(r.Service.Users),
		users.NewGetUserHandler(r.Service.Users),
		users.NewGetUsersHandler(r.Service.Users),
		users.NewGetAllUsersHandler(r.Service.Users),
		users.NewUpdateUsersHandler(r.Service.Users),
		users.NewDeleteUserHandler(r.Service.Users),
		users.NewDeleteUsersHandler(r.Service.Users),

		income.NewCreateIncomesHandler(r.Service.Income),
		income.NewGetIncomeHandler(r.Service.Income),
		income.NewGetIncomesHandler(r.Service.Income),
		income.NewGetAllIncomesHandler(r.Service.Income),
		income.NewUpdateIncomesHandler(r.Service.Income),
		income.NewDeleteIncomeHandler(r.Service.Income),
		income.NewDeleteIncomesHandler(r.Service.Income),

		expense.NewCreateExpensesHandler(r.Service.Expenses),
		expense.NewGetExpenseHandler(r.Service.Expenses),
		expense.NewGetExpensesHandler(r.Service.Expenses),
		expense.NewGetAllExpensesHandler(r.Service.Expenses),
		expense.NewUpdateExpensesHandler(r.Service.Expenses),
		expense.NewDeleteExpenseHandler(r.Service.Expenses),
		expense.NewDeleteExpensesHandler(r.Service.Expenses),

		budget.NewCreateBudgetsHandler(r.Service.Budgets),
		budget.NewGetBudgetHandler(r.Service.Budgets),
		budget.NewGetBudgetsHandler(r.Service.Budgets),
		budget.NewGetAllBudgetsHandler(r.Service.Budgets),
		budget.NewUpdateBudgetsHandler(r.Service.Budgets),
		budget.NewDeleteBudgetHandler(r.Service.Budgets),
		budget.NewDeleteBudgetsHandler(r.Service.Budgets),

		savingsgoals.NewCreateSavingsGoalsHandler(r.Service.SavingsGoals),
		savingsgoals.NewGetSavingsGoalHandler(r.Service.SavingsGoals),
		savingsgoals.NewGetSavingsGoalsHandler(r.Service.SavingsGoals),
		savingsgoals.NewGetAllSavingsGoalsHandler(r.Service.SavingsGoals),
		savingsgoals.NewUpdateSavingsGoalsHandler(r.Service.SavingsGoals),
		savingsgoals.NewDeleteSavingsGoalHandler(r.Service.SavingsGoals),
		savingsgoals.NewDeleteSavingsGoalsHandler(r.Service.SavingsGoals),

		transaction.NewCreateTransactionsHandler(r.Service.Transactions),
		transaction.NewGetTransactionHandler(r.Service.Transactions),
		transaction.NewGetTransactionsHandler(r.Service.Transactions),
		transaction.NewGetAllTransactionsHandler(r.Service.Transactions),
		transaction.NewUpdateTransactionsHandler(r.Service.Transactions),
		transaction.NewDeleteTransactionHandler(r.Service.Transactions),
		transaction.NewDeleteTransactionsHandler(r.Service.Transactions),
	}
	for _, h := range registrars {
		h.Register(humaAPI)
	}

	return humaAPI
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	r.BuildAPI(mux)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
