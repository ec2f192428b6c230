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

var transactionColumns = []any{"transaction_id", "user_id", "type", "reference_id", "amount", "transaction_date", "created_at"}

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

func (t *TransactionsTable) ListByUser(ctx context.Context, userID int64) ([]Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("transaction_date").Desc(),
		sm.OrderBy("transaction_id").Desc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[Transaction]())
}

func (t *TransactionsTable) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("transaction_id").In(psql.Arg(idArgs(ids)...))),
		sm.OrderBy("transaction_id").Asc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[Transaction]())
}

func (t *TransactionsTable) InsertBatch(ctx context.Context, userID int64, creates []TransactionCreate) ([]Transaction, error) {
	mods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("transactions", "user_id", "type", "reference_id", "amount", "transaction_date"),
		im.Returning(transactionColumns...),
	}
	for _, create := range creates {
		mods = append(mods, im.Values(psql.Arg(userID, create.Type, create.ReferenceID, create.Amount, create.TransactionDate)))
	}
	return bob.All(ctx, t.exec, psql.Insert(mods...), scan.StructMapper[Transaction]())
}

func (t *TransactionsTable) UpdatePartial(ctx context.Context, userID int64, update TransactionUpdate) (*Transaction, error) {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if update.Type.IsValue() {
		sets = append(sets, um.SetCol("type").ToArg(update.Type.MustGet()))
	}
	if update.ReferenceID.IsValue() {
		sets = append(sets, um.SetCol("reference_id").ToArg(update.ReferenceID.MustGet()))
	}
	if update.Amount.IsValue() {
		sets = append(sets, um.SetCol("amount").ToArg(update.Amount.MustGet()))
	}
	if update.TransactionDate.IsValue() {
		sets = append(sets, um.SetCol("transaction_date").ToArg(update.TransactionDate.MustGet()))
	}
	// An UPDATE with no SET columns is invalid SQL; echo the scoped row.
	if len(sets) == 0 {
		rows, err := t.ListByIDs(ctx, userID, []int64{update.TransactionID})
		if err != nil || len(rows) == 0 {
			return nil, err
		}
		return &rows[0], nil
	}

	mods := append([]bob.Mod[*dialect.UpdateQuery]{
		um.Table("transactions"),
		um.Where(psql.Quote("transaction_id").EQ(psql.Arg(update.TransactionID))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Returning(transactionColumns...),
	}, sets...)
	rows, err := bob.All(ctx, t.exec, psql.Update(mods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (t *TransactionsTable) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	query := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("transaction_id").In(psql.Arg(idArgs(ids)...))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
