package model

import "time"

// User is the profile of the logged-in child or parent account.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	Age       int    `json:"age,omitempty"`
}

// DisplayName returns the name screens should greet the user with.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Email
}

// Session holds the bearer credential and profile for the current user.
// Token and User are always stored and cleared together: a session either
// has both or is absent entirely.
type Session struct {
	Token   string    `json:"token"`
	User    User      `json:"user"`
	SavedAt time.Time `json:"saved_at"`
}
