// Package dispatch turns a parsed alias request into a store operation.
//
// A Dispatcher runs one invocation end to end: load the alias file, apply
// the operation, snapshot and save when the file changed, and render the
// result. Lookup misses ("Alias not found", "Group not found",
// "No aliases found") are printed as informational lines and are not
// errors.
package dispatch
