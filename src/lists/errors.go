package lists

import (
	"fmt"

	"github.com/juju/errors"
)

const (
	// ErrEmpty is returned by operations that read or remove an element
	// from a container holding none.
	ErrEmpty = errors.ConstError("container is empty")

	// ErrOutOfRange is returned by indexed access past the last element.
	ErrOutOfRange = errors.ConstError("index out of range")

	// ErrNotIterable is matched by errors returned from spread inserts
	// given a value that cannot be iterated.
	ErrNotIterable = errors.ConstError("value is not iterable")
)

// NotIterableError reports the value rejected by a spread insert.
type NotIterableError struct {
	Value any
}

func (e *NotIterableError) Error() string {
	return fmt.Sprintf("%v: %#v (%T)", ErrNotIterable, e.Value, e.Value)
}

func (e *NotIterableError) Unwrap() error {
	return ErrNotIterable
}

func emptyError(kind, op string) error {
	return errors.Annotatef(ErrEmpty, "%s %s", kind, op)
}
