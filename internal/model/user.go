package model

// User represents an authenticated identity. Users are synthesized at
// login/registration time and immutable for the lifetime of a session.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session holds the current authentication state. IsAuthenticated is true
// exactly when User is non-nil. IsLoading is true only until the initial
// rehydration from local storage has completed.
type Session struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"is_authenticated"`
	IsLoading       bool   `json:"is_loading"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents a successful authentication response.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
