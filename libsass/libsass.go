//go:build cgo

package libsass

import "bytes"
import "fmt"
import "strings"

import "github.com/alexcrichton/go-sass"
import golibsass "github.com/wellington/go-libsass"

// KeyPrecision is an extra option key read by this engine: the number of
// digits kept after the decimal point in numbers.
const KeyPrecision = "precision"

var styles = map[sass.OutputStyle]int{
	sass.Nested:     golibsass.NESTED_STYLE,
	sass.Expanded:   golibsass.EXPANDED_STYLE,
	"compact":       golibsass.COMPACT_STYLE,
	sass.Compressed: golibsass.COMPRESSED_STYLE,
}

// Engine compiles through libsass.
type Engine struct{}

func init() {
	sass.RegisterEngine(Engine{})
}

func (Engine) Run(src sass.Source, opts *sass.Options) sass.Result {
	var out bytes.Buffer
	comp, err := golibsass.New(&out, strings.NewReader(src.Text()))
	if err != nil {
		return failure(err)
	}
	if err := configure(comp, src, opts); err != nil {
		return failure(err)
	}
	if err := comp.Run(); err != nil {
		return failure(err)
	}
	return sass.Result{Output: out.String()}
}

/* A nil opts leaves every setting at libsass' own default. */
func configure(comp golibsass.Compiler, src sass.Source, opts *sass.Options) error {
	if src.IsFile() {
		if err := comp.Option(golibsass.Path(src.Path())); err != nil {
			return err
		}
	}
	if opts == nil {
		return nil
	}

	style, ok := styles[opts.OutputStyle]
	if !ok {
		return fmt.Errorf("libsass: unknown output style %q", opts.OutputStyle)
	}
	if err := comp.Option(golibsass.OutputStyle(style)); err != nil {
		return err
	}

	switch opts.SourceComments {
	case sass.SourceCommentsNone:
	case sass.SourceCommentsDefault:
		if err := comp.Option(golibsass.Comments(true)); err != nil {
			return err
		}
	case sass.SourceCommentsMap:
		err := comp.Option(golibsass.Comments(true), golibsass.SourceMap(true, "", ""))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("libsass: unknown source comments mode %q",
			opts.SourceComments)
	}

	if paths := opts.IncludePathList(); len(paths) > 0 {
		if err := comp.Option(golibsass.IncludePaths(paths)); err != nil {
			return err
		}
	}
	if opts.ImagePath != "" {
		if err := comp.Option(golibsass.ImgDir(opts.ImagePath)); err != nil {
			return err
		}
	}
	if v, ok := opts.Extra[KeyPrecision]; ok {
		prec, ok := v.(int)
		if !ok {
			return fmt.Errorf("libsass: precision must be an integer, got %v", v)
		}
		if err := comp.Option(golibsass.Precision(prec)); err != nil {
			return err
		}
	}
	return nil
}

func failure(err error) sass.Result {
	return sass.Result{ErrorMessage: err.Error(), ErrorStatus: true}
}
