package models

import "time"

// Session is a server-held record mapping a client-supplied identifier to an
// authenticated user. It is used only when the server runs in session mode.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session is no longer valid at now.
func (s Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
