package domain

// User represents an operator account of the parking lot application.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuditFields
}

// Session is the persisted record backing a bearer token issued at sign-in.
type Session struct {
	SessionID string `json:"sessionID"`
	UserID    string `json:"userID"`
	Token     string `json:"-"`
	AuditFields
}
