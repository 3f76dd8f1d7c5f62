package files

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"

	"github.com/docker/go-units"
	"github.com/pkg/errors"
	"github.com/rycus86/textpatch/pkg/config"
	"github.com/rycus86/textpatch/pkg/debug"
	"github.com/sirupsen/logrus"
)

var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

type Result struct {
	Path    string
	Matches int
	Changed bool
	Size    int64
}

// ModifyFile replaces every match of pattern in the file at path with the
// literal replacement and returns the number of matches replaced.
func ModifyFile(path, pattern, replacement string) (int, error) {
	result, err := Apply(&config.Patch{
		Path:        path,
		Pattern:     pattern,
		Replacement: replacement,
	})
	if err != nil {
		return 0, err
	}

	return result.Matches, nil
}

// Apply reads the whole target file, substitutes the pattern and writes the
// content back in place. The file is rewritten even when nothing matched.
func Apply(p *config.Patch) (*Result, error) {
	if p == nil {
		return nil, config.ErrMissingPath
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	regex, err := p.Regexp()
	if err != nil {
		return nil, err
	}

	contents, err := readFile(p.Path)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(contents) {
		return nil, errors.Wrap(ErrInvalidEncoding, p.Path)
	}

	matches := len(regex.FindAllIndex(contents, -1))
	replaced := regex.ReplaceAllLiteral(contents, []byte(p.Replacement))

	if err := writeFile(p.Path, replaced); err != nil {
		return nil, err
	}

	result := &Result{
		Path:    p.Path,
		Matches: matches,
		Changed: !bytes.Equal(contents, replaced),
		Size:    int64(len(replaced)),
	}

	debug.Log().WithFields(logrus.Fields{
		"path":    result.Path,
		"matches": result.Matches,
		"changed": result.Changed,
		"before":  units.HumanSize(float64(len(contents))),
		"after":   units.HumanSize(float64(result.Size)),
	}).Debug("Patched file")

	return result, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file for reading")
	}
	defer f.Close()

	contents, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return contents, nil
}

// writeFile truncates the existing file, keeping its permissions.
func writeFile(path string, contents []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Wrap(err, "failed to open file for writing")
	}

	return writeAndClose(f, path, contents)
}

func writeAndClose(w io.WriteCloser, path string, contents []byte) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()

	if _, err := w.Write(contents); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}
