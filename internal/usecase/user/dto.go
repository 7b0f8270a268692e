package user

// CreateUserRequest represents the request payload for creating a new user.
// The notblank and emailfmt rules are registered in New.
type CreateUserRequest struct {
	Name    string `validate:"notblank"`
	Email   string `validate:"emailfmt"`
	Details *string
}

// UpdateUserRequest represents the request payload for updating an existing user.
// Name and Email are validated with the same rules as Create.
type UpdateUserRequest struct {
	ID      int64
	Name    string `validate:"notblank"`
	Email   string `validate:"emailfmt"`
	Details *string
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID int64
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	ID int64
}

// ListUsersRequest represents the request payload for listing users.
type ListUsersRequest struct {
	Page     int64
	PageSize int64
}
