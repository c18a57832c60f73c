package extract

import (
	"fmt"
	"unicode/utf8"
)

// Text passes plain-text files through unchanged.
type Text struct{}

func (Text) Extensions() []string { return []string{".txt", ".md"} }

func (Text) Extract(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: not valid UTF-8", ErrExtraction)
	}
	return string(data), nil
}
