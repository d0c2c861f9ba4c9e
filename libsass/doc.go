// Package libsass provides a sass.Engine backed by libsass.
//
// Importing this package registers the engine as the default for the
// sass package:
//
//	import _ "github.com/alexcrichton/go-sass/libsass"
//
// The binding needs cgo; without it nothing is registered and compiles
// report sass.ErrNoEngine.
package libsass
