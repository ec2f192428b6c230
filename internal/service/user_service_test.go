package service

import (
	"context"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

func TestUserService_ListAllReturnsOnlyCaller(t *testing.T) {
	row := storedUser()
	users := new(mockUserTable)
	users.On("FindByID", mock.Anything, row.UserID).Return(row, nil)

	svc := &UserService{users: users, operator: new(mockDelegator)}

	got, err := svc.ListAll(context.Background(), row.UserID)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, row.UserID, got[0].UserID)
}

func TestUserService_ListByIDsIgnoresForeignIDs(t *testing.T) {
	users := new(mockUserTable)

	svc := &UserService{users: users, operator: new(mockDelegator)}

	got, err := svc.ListByIDs(context.Background(), 31, []int64{1, 2, 99})
	assert.NoError(t, err)
	assert.Empty(t, got)
	users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserService_ListByIDsIncludesCaller(t *testing.T) {
	row := storedUser()
	users := new(mockUserTable)
	users.On("FindByID", mock.Anything, row.UserID).Return(row, nil)

	svc := &UserService{users: users, operator: new(mockDelegator)}

	got, err := svc.ListByIDs(context.Background(), row.UserID, []int64{1, row.UserID})
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUserService_CreateBatchHashesPasswords(t *testing.T) {
	op := new(mockDelegator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		action, ok := a.(*actions.CreateUsers)
		return ok && len(action.Creates) == 1 &&
			auth.CheckPassword(action.Creates[0].PasswordHash, "plain-password")
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateUsers).Results = []sqlconfig.User{*storedUser()}
	}).Return(nil)

	svc := &UserService{users: new(mockUserTable), operator: op}

	got, err := svc.CreateBatch(context.Background(), []NewUser{
		{Username: "iris", Email: "iris@example.com", Password: "plain-password"},
	})
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	op.AssertExpectations(t)
}

func TestUserService_UpdateBatchRejectsForeignIDs(t *testing.T) {
	op := new(mockDelegator)

	svc := &UserService{users: new(mockUserTable), operator: op}

	_, err := svc.UpdateBatch(context.Background(), 31, []UserPatch{
		{UserID: 99, Email: omit.From("evil@example.com")},
	})
	assert.ErrorIs(t, err, actions.ErrNotFound)
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestUserService_UpdateBatchHashesNewPassword(t *testing.T) {
	op := new(mockDelegator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		action, ok := a.(*actions.UpdateUsers)
		return ok && len(action.Updates) == 1 &&
			action.Updates[0].PasswordHash.IsValue() &&
			auth.CheckPassword(action.Updates[0].PasswordHash.MustGet(), "new-password")
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.UpdateUsers).Results = []sqlconfig.User{*storedUser()}
	}).Return(nil)

	svc := &UserService{users: new(mockUserTable), operator: op}

	_, err := svc.UpdateBatch(context.Background(), 31, []UserPatch{
		{UserID: 31, Password: omit.From("new-password")},
	})
	assert.NoError(t, err)
	op.AssertExpectations(t)
}

func TestUserService_DeleteByIDsScopedToCaller(t *testing.T) {
	op := new(mockDelegator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		action, ok := a.(*actions.DeleteUsers)
		return ok && len(action.IDs) == 1 && action.IDs[0] == 31
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.DeleteUsers).Affected = 1
	}).Return(nil)

	svc := &UserService{users: new(mockUserTable), operator: op}

	affected, err := svc.DeleteByIDs(context.Background(), 31, []int64{31, 99})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	op.AssertExpectations(t)
}

func TestUserService_DeleteByIDsCallerAbsent(t *testing.T) {
	op := new(mockDelegator)

	svc := &UserService{users: new(mockUserTable), operator: op}

	affected, err := svc.DeleteByIDs(context.Background(), 31, []int64{99})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}
