package user

// User represents a user record held by the in-memory store.
type User struct {
	ID      int64   `json:"id"`      // ID is the server-assigned unique identifier, immutable after creation
	Name    string  `json:"name"`    // Name is the full name of the user, required
	Email   string  `json:"email"`   // Email is the email address of the user
	Details *string `json:"details"` // Details is optional free text, null when absent
}
