// Package users exposes the /api/users endpoints. Every operation is scoped
// to the caller's own account; other records are invisible.
package users

import (
	"time"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// User is the API response model for a user account. The password hash is
// never serialized.
type User struct {
	UserID    int64  `json:"user_id" doc:"User id"`
	Username  string `json:"username" doc:"Unique username"`
	Email     string `json:"email" doc:"Unique email address"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
}

func fromRow(row sqlconfig.User) User {
	return User{
		UserID:    row.UserID,
		Username:  row.Username,
		Email:     row.Email,
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
	}
}

func fromRows(rows []sqlconfig.User) []User {
	out := make([]User, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out
}
