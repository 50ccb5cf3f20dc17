// Package models defines client-side data models shared by the authclient
// screens, services and transport.
package models

// Form identifies which screen a set of credentials belongs to.
type Form string

const (
	SignIn Form = "signin"
	SignUp Form = "signup"
)

// Credentials are the values a screen collects from the user.
// Name is only collected by the sign-up form.
type Credentials struct {
	Email    string
	Password string
	Name     string
}

// ValidationResult reports the first violated rule. The zero value means the
// credentials passed every rule.
type ValidationResult struct {
	Rule    string
	Message string
}

// OK reports whether no rule was violated.
func (r ValidationResult) OK() bool {
	return r.Rule == ""
}
