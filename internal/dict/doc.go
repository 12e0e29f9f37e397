// Package dict implements the pronunciation dictionary used to customize
// speech synthesis output. It covers the reverse-engineered binary user
// dictionary format of the Windows engine, the JSON dictionary used on the
// other platforms, a store that hides which format backs a given file, and
// the entry manager that gives callers upsert/remove/find/clear semantics
// over either backend.
package dict
