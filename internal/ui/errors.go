package ui

import "errors"

var (
	// ErrEmptyQuery is returned when a search query is blank after trimming.
	ErrEmptyQuery = errors.New("search query is empty")
	// ErrNoSelection is returned by Recompute when no food is selected.
	ErrNoSelection = errors.New("no food selected")
	// ErrInvalidWeight is returned when the weight input is not a finite number above zero.
	ErrInvalidWeight = errors.New("weight must be a positive number")
	// ErrNoSuchResult is returned when activating a result index outside the current list.
	ErrNoSuchResult = errors.New("no such search result")
	// ErrMalformedResponse is returned when a calculation response has neither nutrients nor an error.
	ErrMalformedResponse = errors.New("calculation response carries no nutrients")
)

// RemoteError is an error message reported by the calculation service itself.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return "calculation service: " + e.Message
}
