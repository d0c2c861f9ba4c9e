package sass

import "log/slog"
import "os"

// Compiler holds one set of options and reuses it for every compile. Unlike
// the package level functions it fails fast: an engine failure comes back as
// a *CompileError.
//
// A Compiler is not safe for concurrent use while its options are being
// changed; separate Compilers share nothing.
type Compiler struct {
	opts      OptionsMap
	engine    Engine
	logger    *slog.Logger
	lastError string
}

// Option configures a Compiler at construction.
type Option func(*Compiler)

// WithEngine makes the compiler use e instead of the registered engine.
func WithEngine(e Engine) Option {
	return func(c *Compiler) { c.engine = e }
}

// WithLogger sets the logger compile events are written to.
func WithLogger(l *slog.Logger) Option {
	return func(c *Compiler) { c.logger = l }
}

// New returns a compiler whose options are the defaults overridden by
// initial. The initial map itself is not retained.
func New(initial OptionsMap, options ...Option) *Compiler {
	c := &Compiler{opts: Defaults()}
	for k, v := range initial {
		c.opts[k] = v
	}
	for _, o := range options {
		o(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Options returns the compiler's own option map. Changes made through it are
// seen by the next compile.
func (c *Compiler) Options() OptionsMap { return c.opts }

// Clone returns an independent compiler with a shallow copy of the options,
// the same engine and logger, and no last error.
func (c *Compiler) Clone() *Compiler {
	opts := make(OptionsMap, len(c.opts))
	for k, v := range c.opts {
		opts[k] = v
	}
	return &Compiler{opts: opts, engine: c.engine, logger: c.logger}
}

// LastError and SetLastError expose a caller-managed error string. Compile
// and CompileFile never touch it.
func (c *Compiler) LastError() string       { return c.lastError }
func (c *Compiler) SetLastError(msg string) { c.lastError = msg }

// Compile compiles inline Sass source.
func (c *Compiler) Compile(source string) (string, error) {
	return c.run(FromString(source))
}

// CompileFile compiles the Sass file at path.
func (c *Compiler) CompileFile(path string) (string, error) {
	return c.run(FromFile(path))
}

// Process compiles infile and writes the CSS to outfile.
func (c *Compiler) Process(infile, outfile string) error {
	out, err := c.CompileFile(infile)
	if err != nil {
		return err
	}
	return os.WriteFile(outfile, []byte(out), 0644)
}

func (c *Compiler) run(src Source) (string, error) {
	flattenIncludePaths(c.opts)
	opts := Normalize(c.opts)

	e := c.engine
	if e == nil {
		e = DefaultEngine()
	}
	if e == nil {
		c.logger.Warn("sass compile failed", "source", src.Name(),
			"error", ErrNoEngine)
		return "", &CompileError{Message: ErrNoEngine.Error(), Source: src, Err: ErrNoEngine}
	}
	c.logger.Debug("compiling sass", "source", src.Name(),
		"style", opts.OutputStyle, "include_paths", opts.IncludePaths)

	res := run(e, src, &opts)
	if res.ErrorStatus {
		c.logger.Warn("sass compile failed", "source", src.Name(),
			"error", res.ErrorMessage)
		return "", &CompileError{Message: res.ErrorMessage, Source: src}
	}
	return res.Output, nil
}
