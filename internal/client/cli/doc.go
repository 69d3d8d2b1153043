// Package cli provides the interactive command-line client.
//
// It wires configuration, the local database, the authentication service
// and a REPL with three screens: Login, Register and Home. The first screen
// is chosen once at startup from the persisted session; afterwards each
// command runs to completion before the next line is read.
//
// Commands: register, login, logout, home, status, help, exit | quit.
//
// Failures are printed as short alerts and control returns to the prompt;
// nothing a user types can terminate the process except exit/quit or EOF.
package cli
