package build

import "compress/gzip"
import "io"
import "os"
import "path/filepath"
import "strings"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/alexcrichton/go-sass"

/* Echoes the file back as CSS, failing on anything mentioning "broken". */
var echo = sass.EngineFunc(func(src sass.Source, opts *sass.Options) sass.Result {
	b, err := os.ReadFile(src.Path())
	if err != nil {
		return sass.Result{ErrorMessage: err.Error(), ErrorStatus: true}
	}
	if strings.Contains(string(b), "broken") {
		return sass.Result{ErrorMessage: "invalid css in " + src.Path(), ErrorStatus: true}
	}
	return sass.Result{Output: string(b) + "/* " + string(opts.OutputStyle) + " */"}
})

func stubFile(t *testing.T, wd, file, contents string) {
	path := filepath.Join(wd, file)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func contents(t *testing.T, path string) string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	var input io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		input, err = gzip.NewReader(f)
		require.NoError(t, err)
	}
	s, err := io.ReadAll(input)
	require.NoError(t, err)
	return string(s)
}

func TestSources(t *testing.T) {
	src := t.TempDir()
	stubFile(t, src, "site.scss", "a")
	stubFile(t, src, "_partial.scss", "b")
	stubFile(t, src, "nested/theme.sass", "c")
	stubFile(t, src, "plain.css", "d")

	got, err := Sources(src)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(src, "site.scss"),
		filepath.Join(src, "nested/theme.sass"),
	}, got)
}

func TestDir(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	stubFile(t, src, "foo/foo.scss", "bar")
	stubFile(t, src, "site.scss", "baz")

	c := sass.New(sass.OptionsMap{sass.KeyOutputStyle: sass.Expanded}, sass.WithEngine(echo))
	outputs, err := Dir(c, src, dst, Config{Workers: 2, Gzip: true, Digest: true})
	require.NoError(t, err)
	require.Len(t, outputs, 2)

	want := "bar/* expanded */"
	assert.Equal(t, want, contents(t, filepath.Join(dst, "foo/foo.css")))
	assert.Equal(t, want, contents(t, filepath.Join(dst, "foo/foo.css.gz")))

	digest := hexdigest(want)
	assert.Equal(t, want, contents(t, filepath.Join(dst, "foo/foo-"+digest+".css")))
	assert.Equal(t, want, contents(t, filepath.Join(dst, "foo/foo-"+digest+".css.gz")))
	assert.Equal(t, "baz/* expanded */", contents(t, filepath.Join(dst, "site.css")))

	for _, o := range outputs {
		assert.Len(t, o.Files, 4)
		assert.Len(t, o.Digest, 32)
	}
}

func TestDirPlain(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	stubFile(t, src, "site.scss", "baz")

	c := sass.New(nil, sass.WithEngine(echo))
	outputs, err := Dir(c, src, dst, Config{})
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, []string{filepath.Join(dst, "site.css")}, outputs[0].Files)
	assert.Empty(t, outputs[0].Digest)
	assert.NoFileExists(t, filepath.Join(dst, "site.css.gz"))
}

func TestDirReportsFailures(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	stubFile(t, src, "good.scss", "fine")
	stubFile(t, src, "bad.scss", "broken")

	c := sass.New(nil, sass.WithEngine(echo))
	outputs, err := Dir(c, src, dst, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid css in")

	var cerr *sass.CompileError
	assert.ErrorAs(t, err, &cerr)

	require.Len(t, outputs, 1)
	assert.Equal(t, filepath.Join(src, "good.scss"), outputs[0].Source)
	assert.FileExists(t, filepath.Join(dst, "good.css"))
	assert.NoFileExists(t, filepath.Join(dst, "bad.css"))
}

func TestDirLeavesCompilerAlone(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	stubFile(t, src, "site.scss", "baz")

	c := sass.New(sass.OptionsMap{sass.KeyIncludePaths: []string{"a", "b"}}, sass.WithEngine(echo))
	_, err := Dir(c, src, dst, Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, c.Options()[sass.KeyIncludePaths])
}

func TestDigestPath(t *testing.T) {
	assert.Equal(t, "a/foo-abc.css", DigestPath("a/foo.css", "abc"))

	old := Version
	defer func() { Version = old }()
	Version = "1"
	a := hexdigest("x")
	Version = "2"
	b := hexdigest("x")
	assert.NotEqual(t, a, b)
}
