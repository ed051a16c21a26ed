package model

import "time"

// AdminUser represents an account with access to the admin panel.
type AdminUser struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginRequest is the payload for admin authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=128"`
}

// CreateAdminUserRequest is the payload for adding an admin account.
type CreateAdminUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// UpdateAdminUserRequest is the payload for editing an admin account.
// Password is optional: when empty the stored hash is left unchanged.
type UpdateAdminUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"omitempty,min=6,max=128"`
}
