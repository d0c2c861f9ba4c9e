package sass

/* The functional API. None of these return a Go error; a failed compile shows
   up as a non-empty error message or as empty output. */

// CompileFull compiles source with opts and returns both the CSS and the
// engine's error message. A nil opts compiles with the defaults.
func CompileFull(source string, opts OptionsMap) (output, errorMessage string) {
	return compileWith(DefaultEngine(), FromString(source), opts).Pair()
}

// CompileOutputOnly is CompileFull without the error message.
func CompileOutputOnly(source string, opts OptionsMap) string {
	return compileWith(DefaultEngine(), FromString(source), opts).Scalar()
}

// CompileFileFull compiles the file at path. Missing or unreadable files are
// reported through the error message like any other engine failure.
func CompileFileFull(path string, opts OptionsMap) (output, errorMessage string) {
	return compileWith(DefaultEngine(), FromFile(path), opts).Pair()
}

// CompileFileOutputOnly is CompileFileFull without the error message.
func CompileFileOutputOnly(path string, opts OptionsMap) string {
	return compileWith(DefaultEngine(), FromFile(path), opts).Scalar()
}

func compileWith(e Engine, src Source, raw OptionsMap) Result {
	opts := Normalize(raw)
	return run(e, src, &opts)
}
