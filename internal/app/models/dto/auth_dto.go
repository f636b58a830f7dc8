package dto

import "github.com/vikass-pal/campusconnect/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=30"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	FullName     string `json:"fullName" binding:"required"`
	AcademicYear string `json:"academicYear" binding:"required"`
}

// UpdateProfileRequest represents profile update data. Pointer fields are
// optional; absent fields leave the stored value untouched.
type UpdateProfileRequest struct {
	FullName       *string   `json:"fullName,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	Skills         *[]string `json:"skills,omitempty"`
	AcademicYear   *string   `json:"academicYear,omitempty"`
	ProfilePicture *string   `json:"profilePicture,omitempty"`
}

// TokenResponse represents session token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  models.User   `json:"user"`
}
