package main

import "errors"

// Exit codes.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing config, missing credentials)
	ExitDataError   = 3 // Data error (record could not be resolved or serialized)
)

// errRecordsFailed marks a run that finished but skipped records. It is
// returned (wrapped) rather than exiting in place, so deferred cleanup
// still runs; main maps it to ExitDataError.
var errRecordsFailed = errors.New("some records could not be processed")
