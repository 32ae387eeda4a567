package models

// Session is the persisted login of the client.
type Session struct {
	UserID int64
	Login  string
	Token  string
}

// Valid reports whether the session identifies a user and carries a token.
func (s Session) Valid() bool {
	return s.UserID > 0 && s.Token != ""
}
