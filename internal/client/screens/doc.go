// Package screens implements the sign-in and sign-up form controllers.
//
// A Screen owns the credentials its form collects, validates them on submit,
// sends at most one request at a time through an Authenticator, and reports
// every result through a Presenter. Front ends (the REPL and the TUI) supply
// the Presenter and Navigator and drive the Screen through its change
// handlers and Submit.
package screens
