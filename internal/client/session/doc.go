// Package session owns the console's credential store and the guard that
// protects every signed-in action.
//
// A session lives in one of two lifetimes: the ephemeral one (process
// memory, gone when the console exits) or the durable one (the local
// SQLite state file). Store.Read checks them in that order and returns the
// first complete session; the lifetimes are never merged. Store.Clear
// empties both, whichever one holds data.
//
// Guard.Require re-reads the store on every call. There is no cached
// "signed in" flag: a session that disappeared between two commands is
// noticed by the next one.
package session
