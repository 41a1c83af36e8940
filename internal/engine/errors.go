package engine

import (
	"errors"
	"fmt"
)

// StageError reports which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func IsStageError(err error) bool {
	var target *StageError
	return errors.As(err, &target)
}

// errPanic wraps a value recovered from a panicking stage.
var errPanic = errors.New("panic")
