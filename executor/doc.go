// Package executor glues the text front ends to the engine: it parses one
// SQL-ish line, executes the resulting command, and renders the outcome as
// plain text for the REPL. Errors pass through untouched so the caller can
// decide how to display them.
package executor
