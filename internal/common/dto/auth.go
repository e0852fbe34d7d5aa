package dto

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// LoginFailure represents a rejected login.
// Authentication failures are reported with a 200 status and a failure
// flag; only server-side faults use error statuses.
type LoginFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
