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

var incomeColumns = []any{"income_id", "user_id", "amount", "source", "date_received", "created_at"}

var _ IIncomeTable = (*IncomeTable)(nil)

// IncomeTable provides access to the income table.
type IncomeTable struct {
	exec bob.Executor
}

func NewIncomeTable(exec bob.Executor) *IncomeTable {
	return &IncomeTable{exec: exec}
}

func (t *IncomeTable) ListByUser(ctx context.Context, userID int64) ([]Income, error) {
	query := psql.Select(
		sm.Columns(incomeColumns...),
		sm.From("income"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("date_received").Desc(),
		sm.OrderBy("income_id").Desc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[Income]())
}

func (t *IncomeTable) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]Income, error) {
	query := psql.Select(
		sm.Columns(incomeColumns...),
		sm.From("income"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("income_id").In(psql.Arg(idArgs(ids)...))),
		sm.OrderBy("income_id").Asc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[Income]())
}

// InsertBatch inserts all rows in one statement and returns them. Running it
// on a transaction executor makes the batch all-or-nothing.
func (t *IncomeTable) InsertBatch(ctx context.Context, userID int64, creates []IncomeCreate) ([]Income, error) {
	mods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("income", "user_id", "amount", "source", "date_received"),
		im.Returning(incomeColumns...),
	}
	for _, create := range creates {
		mods = append(mods, im.Values(psql.Arg(userID, create.Amount, create.Source, create.DateReceived)))
	}
	return bob.All(ctx, t.exec, psql.Insert(mods...), scan.StructMapper[Income]())
}

// UpdatePartial applies the set fields of the update to one row and returns
// the stored row, or nil when the row does not exist or belongs to another
// user.
func (t *IncomeTable) UpdatePartial(ctx context.Context, userID int64, update IncomeUpdate) (*Income, error) {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if update.Amount.IsValue() {
		sets = append(sets, um.SetCol("amount").ToArg(update.Amount.MustGet()))
	}
	if update.Source.IsValue() {
		sets = append(sets, um.SetCol("source").ToArg(update.Source.MustGet()))
	}
	if update.DateReceived.IsValue() {
		sets = append(sets, um.SetCol("date_received").ToArg(update.DateReceived.MustGet()))
	}
	// An UPDATE with no SET columns is invalid SQL; echo the scoped row.
	if len(sets) == 0 {
		rows, err := t.ListByIDs(ctx, userID, []int64{update.IncomeID})
		if err != nil || len(rows) == 0 {
			return nil, err
		}
		return &rows[0], nil
	}

	mods := append([]bob.Mod[*dialect.UpdateQuery]{
		um.Table("income"),
		um.Where(psql.Quote("income_id").EQ(psql.Arg(update.IncomeID))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Returning(incomeColumns...),
	}, sets...)
	rows, err := bob.All(ctx, t.exec, psql.Update(mods...), scan.StructMapper[Income]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (t *IncomeTable) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	query := psql.Delete(
		dm.From("income"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("income_id").In(psql.Arg(idArgs(ids)...))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
