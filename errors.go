package sass

import "errors"

// ErrNoEngine is reported when a compile runs before any engine has been
// registered or supplied.
var ErrNoEngine = errors.New("sass: no compile engine registered")

// CompileError is returned by Compiler when the engine reports a failure.
// Its message is the engine's text, unchanged. Err is set only when the
// failure did not come from an engine, e.g. ErrNoEngine.
type CompileError struct {
	Message string
	Source  Source
	Err     error
}

func (e *CompileError) Error() string { return e.Message }
func (e *CompileError) Unwrap() error { return e.Err }
