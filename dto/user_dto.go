package dto

import "github.com/vishalpatil-45/Adventour/domain"

// SignupRequest is what the sign-up modal sends
type SignupRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// LoginRequest is what the log-in modal sends
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the profile form. Every field is optional;
// empty values leave the stored value unchanged.
type UpdateProfileRequest struct {
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty" binding:"omitempty,email"`
	Phone       string `json:"phone,omitempty" binding:"omitempty,phone"`
	NewPassword string `json:"newPassword,omitempty" binding:"omitempty,min=6"`
}

// AuthResponse is returned by sign-up and log-in
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// ErrorResponse is the error body used by every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the generic success body
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
