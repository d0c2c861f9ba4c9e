package sass

import "sync"

// Source is either inline Sass text or the path of a file the engine reads
// itself.
type Source struct {
	text   string
	path   string
	isFile bool
}

func FromString(text string) Source { return Source{text: text} }
func FromFile(path string) Source   { return Source{path: path, isFile: true} }

func (s Source) IsFile() bool { return s.isFile }
func (s Source) Text() string { return s.text }
func (s Source) Path() string { return s.path }

// Name is a short label for logs: the path for files, "stdin" otherwise.
func (s Source) Name() string {
	if s.isFile {
		return s.path
	}
	return "stdin"
}

// Result is what an engine hands back for one compile.
type Result struct {
	Output       string
	ErrorMessage string
	ErrorStatus  bool
}

// Engine turns Sass into CSS. A nil opts asks the engine to use its own
// built-in defaults, which need not match Defaults.
type Engine interface {
	Run(src Source, opts *Options) Result
}

// EngineFunc adapts a plain function to the Engine interface.
type EngineFunc func(src Source, opts *Options) Result

func (f EngineFunc) Run(src Source, opts *Options) Result {
	return f(src, opts)
}

var engineMu sync.RWMutex
var defaultEngine Engine

// RegisterEngine installs e as the engine behind the package level compile
// functions and behind compilers built without WithEngine. Engine packages
// call it from init, so importing one is enough to wire it up. It returns
// the previously registered engine.
func RegisterEngine(e Engine) Engine {
	engineMu.Lock()
	defer engineMu.Unlock()
	prev := defaultEngine
	defaultEngine = e
	return prev
}

// DefaultEngine returns the registered engine, or nil.
func DefaultEngine() Engine {
	engineMu.RLock()
	defer engineMu.RUnlock()
	return defaultEngine
}

func run(e Engine, src Source, opts *Options) Result {
	if e == nil {
		return Result{ErrorMessage: ErrNoEngine.Error(), ErrorStatus: true}
	}
	res := e.Run(src, opts)
	if res.ErrorStatus {
		/* never hand back output alongside a failure */
		res.Output = ""
	}
	return res
}
