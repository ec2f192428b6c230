package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var expenseColumns = []any{"expense_id", "user_id", "amount", "category", "description", "date_spent", "created_at"}

var _ IExpenseTable = (*ExpensesTable)(nil)

// ExpensesTable provides access to the expenses table.
type ExpensesTable struct {
	exec bob.Executor
}

func NewExpensesTable(exec bob.Executor) *ExpensesTable {
	return &ExpensesTable{exec: exec}
}

func (t *ExpensesTable) ListByUser(ctx context.Context, userID int64) ([]Expense, error) {
	query := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("date_spent").Desc(),
		sm.OrderBy("expense_id").Desc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[Expense]())
}

func (t *ExpensesTable) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]Expense, error) {
	query := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("expense_id").In(psql.Arg(idArgs(ids)...))),
		sm.OrderBy("expense_id").Asc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[Expense]())
}

func (t *ExpensesTable) InsertBatch(ctx context.Context, userID int64, creates []ExpenseCreate) ([]Expense, error) {
	mods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("expenses", "user_id", "amount", "category", "description", "date_spent"),
		im.Returning(expenseColumns...),
	}
	for _, create := range creates {
		mods = append(mods, im.Values(psql.Arg(userID, create.Amount, create.Category, create.Description, create.DateSpent)))
	}
	return bob.All(ctx, t.exec, psql.Insert(mods...), scan.StructMapper[Expense]())
}

func (t *ExpensesTable) UpdatePartial(ctx context.Context, userID int64, update ExpenseUpdate) (*Expense, error) {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if update.Amount.IsValue() {
		sets = append(sets, um.SetCol("amount").ToArg(update.Amount.MustGet()))
	}
	if update.Category.IsValue() {
		sets = append(sets, um.SetCol("category").ToArg(update.Category.MustGet()))
	}
	if update.Description.IsValue() {
		sets = append(sets, um.SetCol("description").ToArg(update.Description.MustGet()))
	}
	if update.DateSpent.IsValue() {
		sets = append(sets, um.SetCol("date_spent").ToArg(update.DateSpent.MustGet()))
	}
	// An UPDATE with no SET columns is invalid SQL; echo the scoped row.
	if len(sets) == 0 {
		rows, err := t.ListByIDs(ctx, userID, []int64{update.ExpenseID})
		if err != nil || len(rows) == 0 {
			return nil, err
		}
		return &rows[0], nil
	}

	mods := append([]bob.Mod[*dialect.UpdateQuery]{
		um.Table("expenses"),
		um.Where(psql.Quote("expense_id").EQ(psql.Arg(update.ExpenseID))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Returning(expenseColumns...),
	}, sets...)
	rows, err := bob.All(ctx, t.exec, psql.Update(mods...), scan.StructMapper[Expense]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (t *ExpensesTable) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	query := psql.Delete(
		dm.From("expenses"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("expense_id").In(psql.Arg(idArgs(ids)...))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
