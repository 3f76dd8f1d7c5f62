package parse

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rycus86/textpatch/pkg/config"
	"gopkg.in/yaml.v2"
)

// ParsePatch decodes and validates a single patch definition.
func ParsePatch(r io.Reader) (*config.Patch, error) {
	p := new(config.Patch)

	decoder := yaml.NewDecoder(r)
	decoder.SetStrict(true)

	if err := decoder.Decode(p); err != nil {
		return nil, errors.Wrap(err, "failed to decode patch")
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// ParsePatchFile reads a patch definition from a YAML file.
func ParsePatchFile(path string) (*config.Patch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open patch definition")
	}
	defer f.Close()

	p, err := ParsePatch(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return p, nil
}
