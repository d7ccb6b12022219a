package models

// MessageResponse is the generic informational envelope used by registration
// and by auth-middleware rejections ({"message": ...}).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic failure envelope. Internal errors always carry
// the same opaque text; details stay in the server log.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	// Status is "Success" on every successful login.
	Status string `json:"status"`

	// Token is the signed compact JWT to present as a Bearer credential.
	Token string `json:"token"`
}

// UsersResponse is the envelope of the full directory listing.
type UsersResponse struct {
	Status string `json:"status"`

	// TotalUsers is the number of entries in Users. Provided for
	// convenience so clients can validate the response without iterating.
	TotalUsers int `json:"total_users"`

	Users []Employee `json:"users"`
}
