package service

import (
	"context"
	"fmt"

	"github.com/aarondl/opt/omit"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// NewUser is a signup request with the password still in the clear. The
// service hashes it before anything touches storage.
type NewUser struct {
	Username string
	Email    string
	Password string
}

// UserPatch is a partial update to a user record. A set Password is hashed
// before it is stored.
type UserPatch struct {
	UserID   int64
	Username omit.Val[string]
	Email    omit.Val[string]
	Password omit.Val[string]
}

// UserService handles user records. Every operation is scoped to the caller:
// a user can read, update, and delete only their own record.
type UserService struct {
	users    sqlconfig.IUserTable
	operator operator.IOperatorDelegator
}

func NewUserService(store *storage.Storage, op operator.IOperatorDelegator) *UserService {
	return &UserService{
		users:    store.Users,
		operator: op,
	}
}

// ListAll returns the caller's own record. Other accounts are never visible.
func (s *UserService) ListAll(ctx context.Context, callerID int64) ([]sqlconfig.User, error) {
	row, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return []sqlconfig.User{}, nil
	}
	return []sqlconfig.User{*row}, nil
}

// ListByIDs returns the caller's record when its id is among ids, otherwise
// an empty slice.
func (s *UserService) ListByIDs(ctx context.Context, callerID int64, ids []int64) ([]sqlconfig.User, error) {
	for _, id := range ids {
		if id == callerID {
			return s.ListAll(ctx, callerID)
		}
	}
	return []sqlconfig.User{}, nil
}

// CreateBatch registers new accounts. Each password is bcrypt-hashed before
// the batch is handed to the operator.
func (s *UserService) CreateBatch(ctx context.Context, newUsers []NewUser) ([]sqlconfig.User, error) {
	creates := make([]sqlconfig.UserCreate, 0, len(newUsers))
	for _, nu := range newUsers {
		hash, err := auth.HashPassword(nu.Password)
		if err != nil {
			return nil, err
		}
		creates = append(creates, sqlconfig.UserCreate{
			Username:     nu.Username,
			Email:        nu.Email,
			PasswordHash: hash,
		})
	}

	action := &actions.CreateUsers{Creates: creates}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Results, nil
}

// UpdateBatch applies partial updates to the caller's own record. Patches
// addressing any other user id fail the whole batch as not found.
func (s *UserService) UpdateBatch(ctx context.Context, callerID int64, patches []UserPatch) ([]sqlconfig.User, error) {
	updates := make([]sqlconfig.UserUpdate, 0, len(patches))
	for _, patch := range patches {
		if patch.UserID != callerID {
			return nil, fmt.Errorf("user %d: %w", patch.UserID, actions.ErrNotFound)
		}
		update := sqlconfig.UserUpdate{
			UserID:   patch.UserID,
			Username: patch.Username,
			Email:    patch.Email,
		}
		if patch.Password.IsValue() {
			hash, err := auth.HashPassword(patch.Password.MustGet())
			if err != nil {
				return nil, err
			}
			update.PasswordHash = omit.From(hash)
		}
		updates = append(updates, update)
	}

	action := &actions.UpdateUsers{Updates: updates}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Results, nil
}

// DeleteByIDs deletes the caller's account when its id is among ids. Ids
// belonging to other users are ignored.
func (s *UserService) DeleteByIDs(ctx context.Context, callerID int64, ids []int64) (int64, error) {
	own := make([]int64, 0, 1)
	for _, id := range ids {
		if id == callerID {
			own = append(own, id)
			break
		}
	}
	if len(own) == 0 {
		return 0, nil
	}

	action := &actions.DeleteUsers{IDs: own}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Affected, nil
}
