// Package kvstore provides the flat key/value storage that application
// profiles are persisted in.
//
// Keys are hierarchical strings of the form "<group>/<name>", for example
// "General/version" or "Application org.gnome.Maps/scaling". A key is split
// at its last slash, so group names may themselves contain slashes.
//
// Two implementations are provided:
//
//   - Memory: an in-process map, used by tests and embedders
//   - File: a TOML file with one table per group, rewritten on every change
//
// Values are stored as given; typed interpretation (integers, string lists,
// string maps) is left to the caller.
package kvstore
