// Package sasstest provides a scripted sass.Engine for tests.
//
// An Engine answers each compile from a table keyed by source text (for
// inline compiles) or by path (for file compiles), and records every call so
// tests can inspect the options the facade handed over.
package sasstest

import "sync"

import "github.com/alexcrichton/go-sass"

// Call is one recorded engine invocation. Options is nil when the engine was
// called without options.
type Call struct {
	Source  sass.Source
	Options *sass.Options
}

type Engine struct {
	mu       sync.Mutex
	results  map[string]sass.Result
	fallback sass.Result
	calls    []Call
}

// New returns an engine that answers unknown sources with fallback.
func New(fallback sass.Result) *Engine {
	return &Engine{results: make(map[string]sass.Result), fallback: fallback}
}

// Succeed scripts a successful compile of key.
func (e *Engine) Succeed(key, output string) *Engine {
	return e.On(key, sass.Result{Output: output})
}

// Fail scripts a failed compile of key.
func (e *Engine) Fail(key, message string) *Engine {
	return e.On(key, sass.Result{ErrorMessage: message, ErrorStatus: true})
}

// On scripts an arbitrary result for key.
func (e *Engine) On(key string, res sass.Result) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.results[key] = res
	return e
}

func (e *Engine) Run(src sass.Source, opts *sass.Options) sass.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	var copied *sass.Options
	if opts != nil {
		o := *opts
		copied = &o
	}
	e.calls = append(e.calls, Call{Source: src, Options: copied})

	key := src.Text()
	if src.IsFile() {
		key = src.Path()
	}
	if res, ok := e.results[key]; ok {
		return res
	}
	return e.fallback
}

// Calls returns the invocations seen so far, oldest first.
func (e *Engine) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Call(nil), e.calls...)
}

// LastCall returns the most recent invocation; ok is false if there is none.
func (e *Engine) LastCall() (call Call, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.calls) == 0 {
		return Call{}, false
	}
	return e.calls[len(e.calls)-1], true
}
