// Package cli provides the interactive authclient command-line front end.
//
// It runs a REPL over the sign-in and sign-up screens. Messages from a
// screen are printed as a framed notice that waits for Enter, and screen
// navigation switches which form the REPL opens next.
//
// Commands:
//   - signin / signup   open a form
//   - whoami            show the signed-in user
//   - logout            forget the stored session
//   - help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
