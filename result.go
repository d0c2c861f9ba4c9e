package sass

// Pair returns output and error message exactly as the engine reported them.
// Callers decide what a non-empty message means.
func (r Result) Pair() (output, errorMessage string) {
	return r.Output, r.ErrorMessage
}

// Scalar returns only the output, which is empty when the compile failed.
func (r Result) Scalar() string {
	return r.Output
}

// Failed reports whether the engine flagged the compile as failed.
func (r Result) Failed() bool {
	return r.ErrorStatus
}
