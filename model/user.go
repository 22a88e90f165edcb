package model

import "time"

type User struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	CanBeStaff       bool   `json:"canBeStaff"`
	IsEmailConfirmed bool   `json:"isEmailConfirmed"`

	PasswordHash             string     `json:"-"`
	EmailConfirmationCode    string     `json:"-"`
	PasswordResetToken       string     `json:"-"`
	PasswordResetRequestedAt *time.Time `json:"-"`
	PasswordResetAttempts    int        `json:"-"`
}

// StaffCandidate is the public projection of a user returned by staff search
// and staff listings.
type StaffCandidate struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Candidate() StaffCandidate {
	return StaffCandidate{ID: u.ID, Name: u.Name, Email: u.Email}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

type ChangeNameRequest struct {
	Name string `json:"name" binding:"required"`
}
