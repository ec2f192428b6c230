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

var budgetColumns = []any{"budget_id", "user_id", "category", "amount", "start_date", "end_date", "created_at"}

var _ IBudgetTable = (*BudgetsTable)(nil)

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec bob.Executor
}

func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

func (t *BudgetsTable) ListByUser(ctx context.Context, userID int64) ([]Budget, error) {
	query := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("start_date").Desc(),
		sm.OrderBy("budget_id").Desc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[Budget]())
}

func (t *BudgetsTable) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]Budget, error) {
	query := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("budget_id").In(psql.Arg(idArgs(ids)...))),
		sm.OrderBy("budget_id").Asc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[Budget]())
}

func (t *BudgetsTable) InsertBatch(ctx context.Context, userID int64, creates []BudgetCreate) ([]Budget, error) {
	mods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("budgets", "user_id", "category", "amount", "start_date", "end_date"),
		im.Returning(budgetColumns...),
	}
	for _, create := range creates {
		mods = append(mods, im.Values(psql.Arg(userID, create.Category, create.Amount, create.StartDate, create.EndDate)))
	}
	return bob.All(ctx, t.exec, psql.Insert(mods...), scan.StructMapper[Budget]())
}

func (t *BudgetsTable) UpdatePartial(ctx context.Context, userID int64, update BudgetUpdate) (*Budget, error) {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if update.Category.IsValue() {
		sets = append(sets, um.SetCol("category").ToArg(update.Category.MustGet()))
	}
	if update.Amount.IsValue() {
		sets = append(sets, um.SetCol("amount").ToArg(update.Amount.MustGet()))
	}
	if update.StartDate.IsValue() {
		sets = append(sets, um.SetCol("start_date").ToArg(update.StartDate.MustGet()))
	}
	if update.EndDate.IsValue() {
		sets = append(sets, um.SetCol("end_date").ToArg(update.EndDate.MustGet()))
	}
	// An UPDATE with no SET columns is invalid SQL; echo the scoped row.
	if len(sets) == 0 {
		rows, err := t.ListByIDs(ctx, userID, []int64{update.BudgetID})
		if err != nil || len(rows) == 0 {
			return nil, err
		}
		return &rows[0], nil
	}

	mods := append([]bob.Mod[*dialect.UpdateQuery]{
		um.Table("budgets"),
		um.Where(psql.Quote("budget_id").EQ(psql.Arg(update.BudgetID))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Returning(budgetColumns...),
	}, sets...)
	rows, err := bob.All(ctx, t.exec, psql.Update(mods...), scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (t *BudgetsTable) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	query := psql.Delete(
		dm.From("budgets"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("budget_id").In(psql.Arg(idArgs(ids)...))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
