package sandbox

import (
	"errors"
	"fmt"
)

var ErrNoElement = errors.New("host element is missing")

// InitializationError is returned by Mount when the scene cannot be set up.
// The host is torn down and holds no partial state when it is returned.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("failed to initialize scene: %v", e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}
