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

var userColumns = []any{"user_id", "username", "email", "password_hash", "created_at"}

var _ IUserTable = (*UsersTable)(nil)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

func (t *UsersTable) FindByID(ctx context.Context, id int64) (*User, error) {
	query := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(id))),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (t *UsersTable) FindByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*User, error) {
	query := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		psql.WhereOr(
			sm.Where(psql.Quote("username").EQ(psql.Arg(usernameOrEmail))),
			sm.Where(psql.Quote("email").EQ(psql.Arg(usernameOrEmail))),
		),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (t *UsersTable) ListByIDs(ctx context.Context, ids []int64) ([]User, error) {
	query := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("user_id").In(psql.Arg(idArgs(ids)...))),
		sm.OrderBy("user_id").Asc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[User]())
}

func (t *UsersTable) InsertBatch(ctx context.Context, creates []UserCreate) ([]User, error) {
	mods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("users", "username", "email", "password_hash"),
		im.Returning(userColumns...),
	}
	for _, create := range creates {
		mods = append(mods, im.Values(psql.Arg(create.Username, create.Email, create.PasswordHash)))
	}
	return bob.All(ctx, t.exec, psql.Insert(mods...), scan.StructMapper[User]())
}

func (t *UsersTable) UpdatePartial(ctx context.Context, update UserUpdate) (*User, error) {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if update.Username.IsValue() {
		sets = append(sets, um.SetCol("username").ToArg(update.Username.MustGet()))
	}
	if update.Email.IsValue() {
		sets = append(sets, um.SetCol("email").ToArg(update.Email.MustGet()))
	}
	if update.PasswordHash.IsValue() {
		sets = append(sets, um.SetCol("password_hash").ToArg(update.PasswordHash.MustGet()))
	}
	// An UPDATE with no SET columns is invalid SQL; echo the scoped row.
	if len(sets) == 0 {
		return t.FindByID(ctx, update.UserID)
	}

	mods := append([]bob.Mod[*dialect.UpdateQuery]{
		um.Table("users"),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(update.UserID))),
		um.Returning(userColumns...),
	}, sets...)
	rows, err := bob.All(ctx, t.exec, psql.Update(mods...), scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (t *UsersTable) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	query := psql.Delete(
		dm.From("users"),
		dm.Where(psql.Quote("user_id").In(psql.Arg(idArgs(ids)...))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
