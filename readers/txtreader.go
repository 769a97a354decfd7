package readers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("file is not valid UTF-8 text")

// DefaultExtensions are the knowledge-base document types read by default.
var DefaultExtensions = []string{".md", ".markdown"}

// TextFileReader reads plain UTF-8 documents whose extension is in the
// configured set. Extensions are matched case-insensitively.
type TextFileReader struct {
	exts map[string]struct{}
}

func NewTextFileReader(exts ...string) *TextFileReader {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	r := &TextFileReader{exts: make(map[string]struct{}, len(exts))}
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		r.exts[e] = struct{}{}
	}

	return r
}

func (r *TextFileReader) CanRead(path string) bool {
	_, ok := r.exts[strings.ToLower(filepath.Ext(path))]
	return ok
}

func (r *TextFileReader) ReadText(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}

	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}

	return string(buf), nil
}
