package models

import (
	"time"
)

// User defines a registered member of the platform.
type User struct {
	ID             string    `json:"id" example:"b4c9a5f2-1b8e-4f07-9b15-0a6f7c8d9e10"` // Unique identifier for the user
	Username       string    `json:"username" example:"alice_chen"`                    // Unique handle shown next to posts
	Email          string    `json:"email" example:"alice@university.edu"`             // User's email address, unique
	Password       string    `json:"-"`                                                // Bcrypt hash (excluded from JSON)
	FullName       string    `json:"fullName" example:"Alice Chen"`                    // Display name
	Bio            string    `json:"bio,omitempty"`                                    // Short free-text bio
	Skills         []string  `json:"skills"`                                           // Ordered list of skill strings
	AcademicYear   string    `json:"academicYear" example:"Third Year"`                // Academic year label
	ProfilePicture string    `json:"profilePicture,omitempty"`                         // Avatar URL (optional)
	IsAdmin        bool      `json:"isAdmin"`                                          // Admin flag
	CreatedAt      time.Time `json:"createdAt" example:"2024-01-15T10:00:00Z"`
	UpdatedAt      time.Time `json:"updatedAt" example:"2024-01-15T10:00:00Z"`
}

// Clone returns a deep copy so store snapshots never alias caller memory.
func (u User) Clone() User {
	cp := u
	cp.Skills = append([]string(nil), u.Skills...)
	return cp
}

// AuthorRef returns the snapshot embedded into entities the user creates.
func (u User) AuthorRef() Author {
	return Author{
		ID:             u.ID,
		Username:       u.Username,
		FullName:       u.FullName,
		ProfilePicture: u.ProfilePicture,
	}
}

// Author is the immutable snapshot of a user attached to resources, events
// and comments at creation time.
type Author struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"fullName"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Session is the durable record of the currently authenticated identity.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
