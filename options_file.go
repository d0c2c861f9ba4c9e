package sass

import "fmt"
import "io"
import "os"

import "gopkg.in/yaml.v3"

// ReadOptions decodes a YAML mapping of option names to values, e.g.
//
//	output_style: expanded
//	include_paths:
//	  - vendor/css
//	  - lib/css
//
// Sequences are kept as lists; Normalize flattens them.
func ReadOptions(r io.Reader) (OptionsMap, error) {
	opts := OptionsMap{}
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		return nil, fmt.Errorf("sass: decoding options: %w", err)
	}
	if opts == nil {
		/* a null document decodes to a nil map */
		opts = OptionsMap{}
	}
	return opts, nil
}

// LoadOptionsFile reads options from the YAML file at path.
func LoadOptionsFile(path string) (OptionsMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	opts, err := ReadOptions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}
