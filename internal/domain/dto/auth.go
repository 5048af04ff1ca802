// Package dto defines Data Transfer Objects for authentication.
package dto

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate a staff member
// @Example {"email": "host@example.com", "password": "password123"}
type LoginRequest struct {
	// Email is the staff member's email address.
	Email string `json:"email" binding:"required,email" example:"host@example.com"`
	// Password is the staff member's password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with a JWT access token
// @Example {"token": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...", "expires_in": 43200, "staff": {"email": "host@example.com", "name": "Host"}}
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"43200"`
	// Staff contains the authenticated staff member.
	Staff StaffResponse `json:"staff"`
} // @name LoginResponse

// Claims represents the identity carried by a validated access token.
type Claims struct {
	StaffID string `json:"staff_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// StaffResponse represents staff information in API responses.
type StaffResponse struct {
	Email string `json:"email" example:"host@example.com"`
	Name  string `json:"name,omitempty" example:"Host"`
} // @name StaffResponse

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{
			Field:   "email",
			Message: "email is required",
		}
	}
	if len(r.Password) < 6 {
		return &ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}
	}
	return nil
}
