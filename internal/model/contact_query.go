package model

import "time"

// ContactQuery is a message submitted through the public contact form.
// Queries are created publicly, listed and deleted by admins, never updated.
type ContactQuery struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Number    *string   `json:"number"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitContactRequest is the payload of the public contact form.
type SubmitContactRequest struct {
	Name    string  `json:"name" binding:"required,max=100"`
	Email   string  `json:"email" binding:"required,email,max=255"`
	Number  *string `json:"number" binding:"omitempty,max=20"`
	Subject *string `json:"subject" binding:"omitempty,max=255"`
	Message string  `json:"message" binding:"required,max=5000"`
}
