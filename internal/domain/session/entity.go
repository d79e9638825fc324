// internal/domain/session/entity.go
package session

// User represents the authenticated user profile held for the session.
type User struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Location *Location `json:"location,omitempty"`
}

// Location holds the user's coordinates and, when resolved, an address.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Snapshot is the locally persisted session state: the bearer token plus the
// profile it was issued for.
type Snapshot struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest carries the data required to create an account.
type RegisterRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
