package domain

// User is the identity of the signed-in person.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the authentication state shared across the app.
// IsAuthenticated is redundant with User != nil and kept for fast checks.
type Session struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
	IsLoading       bool  `json:"isLoading"`
}

// Valid reports whether the session satisfies IsAuthenticated ⇒ User != nil
// and User != nil ⇒ IsAuthenticated.
func (s Session) Valid() bool {
	return s.IsAuthenticated == (s.User != nil)
}

// Clone returns a copy that does not share the User pointer.
func (s Session) Clone() Session {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}
