package models

// User represents a row of the users table.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}

// Session represents a row of the sessions table.
type Session struct {
	SessionID string `db:"session_id"`
	UserID    string `db:"user_id"`
	Token     string `db:"token"`
	AuditFields
}
