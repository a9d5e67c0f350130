// Package session manages the fridge access lifecycle. A session is opened
// when an employee unlocks a fridge on a device and closed when the door
// shuts. On close the before and after vision captures are diffed and the
// resulting consumption events are written to the ledger in the same
// transaction as the session update, so a session is never marked closed
// without its events and vice versa.
//
// A device hosts at most one open session at a time, and a session can only
// be closed once; violations of either rule surface as conflicts.
package session
