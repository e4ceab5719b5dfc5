package preview

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("preview: aborted")
	// ErrNoChoices is returned for a choice question with an empty choice list.
	ErrNoChoices = errors.New("preview: question has no choices")
)
