package model

import "errors"

var (
	// ErrConfiguration reports a missing or unusable collaborator, such as an
	// unreadable stop-word file or an unknown provider name.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidArgument reports a caller contract violation: negative topic
	// counts, mismatched corpus and label lengths.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports a topic id absent from the current grouping.
	ErrNotFound = errors.New("not found")
)
