// Package cli provides the interactive carswipe command-line client.
//
// It wires configuration, the local key cache, API services and an
// interactive REPL. Typical flow: log in (which unseals the account's key
// pair into a session handle), list threads, open a thread about a listing
// and exchange end-to-end encrypted messages.
//
// Each REPL line is parsed by a fresh cobra command tree (see replCommand),
// so every command gets argument validation and help for free.
package cli
