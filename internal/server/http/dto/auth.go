package dto

// SignupRequest describes the registration payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes the credential verification payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CustomerResponse is the public projection of a customer. It never carries
// password material.
type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SignupResponse confirms a successful registration.
type SignupResponse struct {
	Message  string           `json:"message"`
	Customer CustomerResponse `json:"user"`
}
