package dto

import "github.com/finesse-lifestyle/storefront-api/internal/models"

type RegisterRequest struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Contact  string `json:"contact"`
	Password string `json:"password"`
}

type SendCodeRequest struct {
	Contact string `json:"contact"`
}

type ActivateAccountRequest struct {
	Contact string `json:"contact"`
	Token   string `json:"token"`
}

type ResetPasswordRequest struct {
	Contact     string `json:"contact"`
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}
