// Package log builds the run logger: every record is written to the run log
// file and mirrored to the terminal.
package log
