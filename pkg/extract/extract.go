// Package extract turns uploaded reference files into plain text for the
// prompt context. Extractors are looked up by file extension; anything
// without a registered extractor is rejected before storage is touched.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupported marks a file type no extractor handles.
	ErrUnsupported = errors.New("unsupported file type")
	// ErrExtraction marks a file of a supported type that could not be parsed.
	ErrExtraction = errors.New("extraction failed")
)

// Extractor converts one file format into plain text.
type Extractor interface {
	Extract(data []byte) (string, error)
	Extensions() []string
}

// Registry dispatches to extractors by lower-cased file extension.
type Registry struct {
	byExt map[string]Extractor
}

func NewRegistry(xs ...Extractor) *Registry {
	r := &Registry{byExt: map[string]Extractor{}}
	for _, x := range xs {
		for _, ext := range x.Extensions() {
			r.byExt[ext] = x
		}
	}
	return r
}

// Default covers the formats the admin upload form accepts.
func Default() *Registry {
	return NewRegistry(Text{}, HTML{}, Excel{}, PDF{})
}

// Supported reports whether filename's extension has an extractor.
func (r *Registry) Supported(filename string) bool {
	_, ok := r.byExt[normExt(filename)]
	return ok
}

// Extract parses data according to filename's extension. It returns
// ErrUnsupported for unknown extensions and wraps parser failures in
// ErrExtraction.
func (r *Registry) Extract(filename string, data []byte) (string, error) {
	x, ok := r.byExt[normExt(filename)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, filepath.Ext(filename))
	}
	text, err := x.Extract(data)
	if err != nil {
		if errors.Is(err, ErrExtraction) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	return text, nil
}

func normExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
