package models

import "time"

// User is the signed-in user as kept in application state.
type User struct {
	Name        string
	Email       string
	AccessToken string
}

// Session is the payload of a successful sign-in.
type Session struct {
	User         User
	RefreshToken string

	// AccessExpiresAt is the exp claim of the access token; zero when the
	// token carries none.
	AccessExpiresAt time.Time
}
