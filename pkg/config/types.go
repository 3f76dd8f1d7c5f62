package config

import (
	"regexp"

	"github.com/pkg/errors"
)

var (
	ErrMissingPath    = errors.New("patch has no target path")
	ErrMissingPattern = errors.New("patch has no pattern")
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Patch is a single search-and-replace over the whole content of one file.
type Patch struct {
	Path        string `yaml:"path"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`

	// Literal quotes the pattern before compiling it.
	Literal bool `yaml:"literal"`
}

func (p *Patch) Validate() error {
	if p.Path == "" {
		return ErrMissingPath
	}

	if p.Pattern == "" {
		return ErrMissingPattern
	}

	return nil
}

func (p *Patch) Regexp() (*regexp.Regexp, error) {
	expr := p.Pattern
	if p.Literal {
		expr = regexp.QuoteMeta(expr)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPattern, "%q: %v", p.Pattern, err)
	}

	return re, nil
}
