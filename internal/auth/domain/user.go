package domain

import (
	"strings"
	"time"
)

// DefaultRole is assigned to users that register without one.
const DefaultRole = "user"

type User struct {
	ID           string
	Username     string // always stored case-folded, see FoldUsername
	PasswordHash string // bcrypt encoded
	Email        string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FoldUsername normalizes a username to its canonical stored form. Usernames
// are unique under case-insensitive comparison, so the lowercase form is the
// uniqueness key; accents and other marks remain significant.
func FoldUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
