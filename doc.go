// Package sass compiles Sass and SCSS to CSS through a pluggable engine.
//
// There are two ways in. The package level functions compile one source with
// explicit options and never return an error; a failure shows up as a
// non-empty error message:
//
//	css, msg := sass.CompileFull(".a { color: red; }", nil)
//	if msg != "" {
//		...
//	}
//
// A Compiler keeps its options between compiles and returns a *CompileError
// when the engine fails:
//
//	c := sass.New(sass.OptionsMap{sass.KeyIncludePaths: []string{"vendor/css"}})
//	css, err := c.CompileFile("site.scss")
//
// The engine itself lives elsewhere. Import an engine package such as
// github.com/alexcrichton/go-sass/libsass to register one, or hand a
// Compiler its own with WithEngine.
package sass
