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

var savingsGoalColumns = []any{"goal_id", "user_id", "goal_name", "target_amount", "saved_amount", "deadline", "created_at"}

var _ ISavingsGoalTable = (*SavingsGoalsTable)(nil)

// SavingsGoalsTable provides access to the savings_goals table.
type SavingsGoalsTable struct {
	exec bob.Executor
}

func NewSavingsGoalsTable(exec bob.Executor) *SavingsGoalsTable {
	return &SavingsGoalsTable{exec: exec}
}

func (t *SavingsGoalsTable) ListByUser(ctx context.Context, userID int64) ([]SavingsGoal, error) {
	query := psql.Select(
		sm.Columns(savingsGoalColumns...),
		sm.From("savings_goals"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("goal_id").Desc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[SavingsGoal]())
}

func (t *SavingsGoalsTable) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]SavingsGoal, error) {
	query := psql.Select(
		sm.Columns(savingsGoalColumns...),
		sm.From("savings_goals"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("goal_id").In(psql.Arg(idArgs(ids)...))),
		sm.OrderBy("goal_id").Asc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[SavingsGoal]())
}

func (t *SavingsGoalsTable) InsertBatch(ctx context.Context, userID int64, creates []SavingsGoalCreate) ([]SavingsGoal, error) {
	mods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("savings_goals", "user_id", "goal_name", "target_amount", "saved_amount", "deadline"),
		im.Returning(savingsGoalColumns...),
	}
	for _, create := range creates {
		mods = append(mods, im.Values(psql.Arg(userID, create.GoalName, create.TargetAmount, create.SavedAmount, create.Deadline)))
	}
	return bob.All(ctx, t.exec, psql.Insert(mods...), scan.StructMapper[SavingsGoal]())
}

func (t *SavingsGoalsTable) UpdatePartial(ctx context.Context, userID int64, update SavingsGoalUpdate) (*SavingsGoal, error) {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if update.GoalName.IsValue() {
		sets = append(sets, um.SetCol("goal_name").ToArg(update.GoalName.MustGet()))
	}
	if update.TargetAmount.IsValue() {
		sets = append(sets, um.SetCol("target_amount").ToArg(update.TargetAmount.MustGet()))
	}
	if update.SavedAmount.IsValue() {
		sets = append(sets, um.SetCol("saved_amount").ToArg(update.SavedAmount.MustGet()))
	}
	if !update.Deadline.IsUnset() {
		// Null explicitly clears the deadline.
		sets = append(sets, um.SetCol("deadline").ToArg(update.Deadline.MustPtr()))
	}
	// An UPDATE with no SET columns is invalid SQL; echo the scoped row.
	if len(sets) == 0 {
		rows, err := t.ListByIDs(ctx, userID, []int64{update.GoalID})
		if err != nil || len(rows) == 0 {
			return nil, err
		}
		return &rows[0], nil
	}

	mods := append([]bob.Mod[*dialect.UpdateQuery]{
		um.Table("savings_goals"),
		um.Where(psql.Quote("goal_id").EQ(psql.Arg(update.GoalID))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Returning(savingsGoalColumns...),
	}, sets...)
	rows, err := bob.All(ctx, t.exec, psql.Update(mods...), scan.StructMapper[SavingsGoal]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (t *SavingsGoalsTable) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	query := psql.Delete(
		dm.From("savings_goals"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("goal_id").In(psql.Arg(idArgs(ids)...))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
