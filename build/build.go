// Package build compiles a tree of Sass files into a directory of CSS.
//
// Every x.scss or x.sass under the source root becomes x.css at the same
// relative place under the destination. Partials (files whose name starts
// with an underscore) are only pulled in through imports and are skipped.
// Optionally a gzipped copy and a copy fingerprinted with the md5 of its
// contents (x-<digest>.css) are written next to it.
package build

import "compress/gzip"
import "errors"
import "fmt"
import "io"
import "io/fs"
import "os"
import "path/filepath"
import "runtime"
import "strings"

import "golang.org/x/sync/errgroup"

import "github.com/alexcrichton/go-sass"

type Config struct {
	Workers int  // defaults to runtime.NumCPU()
	Gzip    bool // also write x.css.gz
	Digest  bool // also write x-<digest>.css
}

// Output describes the files written for one source.
type Output struct {
	Source string
	CSS    string
	Digest string
	Files  []string
}

var extensions = map[string]bool{".scss": true, ".sass": true}

// Dir compiles every Sass file under src into dest. Each worker gets its own
// clone of c, so c's options are read but never changed. All failures are
// returned joined together; files that compiled are still written.
func Dir(c *sass.Compiler, src, dest string, cfg Config) ([]Output, error) {
	sources, err := Sources(src)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	/* Compiling takes awhile, parallelize! */
	var g errgroup.Group
	g.SetLimit(workers)
	outputs := make([]Output, len(sources))
	errs := make([]error, len(sources))
	for i, path := range sources {
		worker := c.Clone()
		g.Go(func() error {
			outputs[i], errs[i] = compileOne(worker, src, dest, path, cfg)
			return nil
		})
	}
	/* failures land in errs; the closures never fail the group */
	_ = g.Wait()

	ret := outputs[:0]
	for i := range outputs {
		if errs[i] == nil {
			ret = append(ret, outputs[i])
		}
	}
	return ret, errors.Join(errs...)
}

// Sources lists the Sass files under root that Dir would compile, in walk
// order.
func Sources(root string) ([]string, error) {
	var ret []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !extensions[filepath.Ext(name)] || strings.HasPrefix(name, "_") {
			return nil
		}
		ret = append(ret, path)
		return nil
	})
	return ret, err
}

func compileOne(c *sass.Compiler, root, dest, path string, cfg Config) (Output, error) {
	out := Output{Source: path}
	css, err := c.CompileFile(path)
	if err != nil {
		return out, fmt.Errorf("%s: %w", path, err)
	}
	out.CSS = css

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return out, err
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".css"
	dst := filepath.Join(dest, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return out, err
	}

	targets := []string{dst}
	if cfg.Digest {
		out.Digest = hexdigest(css)
		targets = append(targets, DigestPath(dst, out.Digest))
	}
	for _, t := range targets {
		if err := write(t, css, cfg.Gzip); err != nil {
			return out, err
		}
		out.Files = append(out.Files, t)
		if cfg.Gzip {
			out.Files = append(out.Files, t+".gz")
		}
	}
	return out, nil
}

// DigestPath inserts digest before the extension: foo.css -> foo-<digest>.css.
func DigestPath(path, digest string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + "-" + digest + ext
}

/* Writes css to path and, if asked, path.gz. */
func write(path, css string, compress bool) error {
	if err := os.WriteFile(path, []byte(css), 0644); err != nil {
		return err
	}
	if !compress {
		return nil
	}

	f, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer f.Close()
	gz, err := gzip.NewWriterLevel(f, gzip.BestCompression)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(gz, css); err != nil {
		gz.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}
	return f.Close()
}
