package Trees

import "github.com/pkg/errors"

// Errors returned by BST. They are usually wrapped with the offending call's
// context, so compare with errors.Is.
var (
	// ErrInvalidArgument is returned for nil values, nil input slices, and reversed range bounds.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTypeMismatch is returned when a value can't be compared against the elements of the tree.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrIndexOutOfRange is returned by Get when the index isn't in [0, Size()).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyCollection is returned by First and Last on an empty tree.
	ErrEmptyCollection = errors.New("empty tree")
	// ErrEndOfSequence is returned by Iterator.Next once the iterator is exhausted.
	ErrEndOfSequence = errors.New("end of sequence")
)
