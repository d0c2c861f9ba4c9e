package sass

import "fmt"
import "strings"

const (
	KeyOutputStyle    = "output_style"
	KeySourceComments = "source_comments"
	KeyIncludePaths   = "include_paths"
	KeyImagePath      = "image_path"
)

// ListSeparator joins include paths into the single string the engine takes.
const ListSeparator = ":"

// OptionsMap is the loosely shaped option set callers hand to the facade.
// Keys other than the Key* constants are forwarded to the engine untouched.
type OptionsMap map[string]any

// Options is the normalized form of an OptionsMap. Empty IncludePaths and
// ImagePath mean the option is absent.
type Options struct {
	OutputStyle    OutputStyle
	SourceComments SourceComments
	IncludePaths   string
	ImagePath      string
	Extra          map[string]any
}

// Defaults returns a fresh map holding the documented defaults.
func Defaults() OptionsMap {
	return OptionsMap{
		KeyOutputStyle:    Compressed,
		KeySourceComments: SourceCommentsNone,
	}
}

// IncludePathList splits IncludePaths back into its elements.
func (o *Options) IncludePathList() []string {
	if o.IncludePaths == "" {
		return nil
	}
	return strings.Split(o.IncludePaths, ListSeparator)
}

// Normalize merges raw over the defaults and flattens list-shaped include
// paths. It never fails: values it does not understand are carried through
// for the engine to judge.
func Normalize(raw OptionsMap) Options {
	opts := Options{OutputStyle: Compressed, SourceComments: SourceCommentsNone}
	for key, val := range raw {
		switch key {
		case KeyOutputStyle:
			if val != nil {
				opts.OutputStyle = toOutputStyle(val)
			}
		case KeySourceComments:
			if val != nil {
				opts.SourceComments = toSourceComments(val)
			}
		case KeyIncludePaths:
			if joined, ok := JoinIncludePaths(val); ok {
				opts.IncludePaths = joined
			}
		case KeyImagePath:
			if val != nil {
				opts.ImagePath = fmt.Sprint(val)
			}
		default:
			if opts.Extra == nil {
				opts.Extra = make(map[string]any)
			}
			opts.Extra[key] = val
		}
	}
	return opts
}

// JoinIncludePaths applies the include path flattening rule to one value.
// Lists are joined with ListSeparator in order, strings are returned as is.
// The boolean is false when v holds no include paths at all.
func JoinIncludePaths(v any) (string, bool) {
	switch paths := v.(type) {
	case nil:
		return "", false
	case string:
		return paths, true
	case []string:
		return strings.Join(paths, ListSeparator), true
	case []any:
		parts := make([]string, 0, len(paths))
		for _, p := range paths {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, ListSeparator), true
	}
	return fmt.Sprint(v), true
}

/* Rewrites a list-shaped include_paths entry in place; everything else in the
   map is left alone. */
func flattenIncludePaths(m OptionsMap) {
	v, ok := m[KeyIncludePaths]
	if !ok {
		return
	}
	switch v.(type) {
	case []string, []any:
		joined, _ := JoinIncludePaths(v)
		m[KeyIncludePaths] = joined
	}
}

func toOutputStyle(v any) OutputStyle {
	switch s := v.(type) {
	case OutputStyle:
		return s
	case string:
		return OutputStyle(s)
	}
	return OutputStyle(fmt.Sprint(v))
}

func toSourceComments(v any) SourceComments {
	switch s := v.(type) {
	case SourceComments:
		return s
	case string:
		return SourceComments(s)
	case bool:
		if s {
			return SourceCommentsDefault
		}
		return SourceCommentsNone
	}
	return SourceComments(fmt.Sprint(v))
}
