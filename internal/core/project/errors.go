// Package project pushes resolved build configurations into a host
// project. The host is abstracted as a Sink; Recorder is an in-memory Sink
// used by the CLI and by tests.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrFilterNotFound indicates a source group path that does not exist.
	ErrFilterNotFound = errors.New("project: filter not found")

	// ErrInvalidFilter indicates an empty or malformed filter path.
	ErrInvalidFilter = errors.New("project: invalid filter path")

	// ErrInvalidGUID indicates a PROJECT_GUID that is not a UUID.
	ErrInvalidGUID = errors.New("project: invalid project GUID")

	// ErrApplyFailed indicates a step of Apply failed on the sink.
	ErrApplyFailed = errors.New("project: apply failed")
)
