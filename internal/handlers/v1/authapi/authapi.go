// Package authapi exposes the /api/auth endpoints: signup, login, and the
// bearer-token probe used by clients to rehydrate a session.
package authapi

import (
	"time"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// User is the API response model for an account. The password hash is never
// serialized.
type User struct {
	UserID    int64  `json:"user_id" doc:"User id"`
	Username  string `json:"username" doc:"Unique username"`
	Email     string `json:"email" doc:"Unique email address"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
}

// Credentials bundles a signed token with the account it belongs to.
type Credentials struct {
	JWT  string `json:"jwt" doc:"Signed bearer token, valid for 72 hours"`
	User User   `json:"user" doc:"The authenticated account"`
}

func fromRow(row *sqlconfig.User) User {
	return User{
		UserID:    row.UserID,
		Username:  row.Username,
		Email:     row.Email,
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
	}
}
