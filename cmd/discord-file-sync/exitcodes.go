package main

// Exit codes for the sync CLI.
const (
	ExitSuccess = 0 // Sync completed and the file list was written
	ExitError   = 1 // Any failure: missing configuration, API error, write failure
)
