package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
)

// User represents a row in the users table. PasswordHash never leaves the
// service layer.
type User struct {
	UserID       int64     `db:"user_id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Username     string
	Email        string
	PasswordHash string
}

// UserUpdate is a partial update keyed by primary key. Unset fields are left
// unchanged; set fields are applied even when they hold a zero value.
type UserUpdate struct {
	UserID       int64
	Username     omit.Val[string]
	Email        omit.Val[string]
	PasswordHash omit.Val[string]
}

// IUserTable defines the interface for user storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name IUserTable --output mock_IUserTable.go
type IUserTable interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*User, error)
	ListByIDs(ctx context.Context, ids []int64) ([]User, error)
	InsertBatch(ctx context.Context, creates []UserCreate) ([]User, error)
	UpdatePartial(ctx context.Context, update UserUpdate) (*User, error)
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
}
