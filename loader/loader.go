package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gamma-omg/teammind/docstore"
	"github.com/gamma-omg/teammind/secrets"
	"go.uber.org/zap"
)

type FileReader interface {
	CanRead(path string) bool
	ReadText(path string) (string, error)
}

type SecretScanner interface {
	Scan(content string) []secrets.Finding
}

// Rejection is a file intentionally excluded because it holds a credential.
type Rejection struct {
	File  string   `json:"file"`
	Rules []string `json:"rules"`
}

// Failure is a file that could not be read.
type Failure struct {
	File string `json:"file"`
	Err  error  `json:"-"`
}

type Report struct {
	Docs     []docstore.Doc
	Rejected []Rejection
	Failed   []Failure
}

// Loader discovers documents below a root directory. Files are visited in
// lexical order so repeated loads of the same tree produce the same result.
type Loader struct {
	log     *zap.Logger
	root    string
	scanner SecretScanner
	readers []FileReader
}

func New(root string, scanner SecretScanner, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}

	return &Loader{
		log:     log,
		root:    root,
		scanner: scanner,
	}
}

func (l *Loader) Root() string { return l.root }

func (l *Loader) RegisterReader(readers ...FileReader) {
	l.readers = append(l.readers, readers...)
}

// Load never fails because of the tree's contents. A missing root yields an
// empty report; the only error is context cancellation.
func (l *Loader) Load(ctx context.Context) (*Report, error) {
	rep := &Report{}

	info, err := os.Stat(l.root)
	if err != nil {
		l.log.Warn("knowledge base not found", zap.String("root", l.root), zap.Error(err))
		return rep, nil
	}
	if !info.IsDir() {
		l.log.Warn("knowledge base is not a directory", zap.String("root", l.root))
		return rep, nil
	}

	err = filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return l.walkError(rep, path, d, err)
		}
		if d.IsDir() {
			return nil
		}

		reader := l.findReader(path)
		if reader == nil {
			l.log.Debug("unsupported file", zap.String("file", path))
			return nil
		}

		name := l.filename(path)

		text, err := reader.ReadText(path)
		if err != nil {
			l.log.Warn("failed to load document", zap.String("file", name), zap.Error(err))
			rep.Failed = append(rep.Failed, Failure{File: name, Err: err})
			return nil
		}

		if l.scanner != nil {
			if findings := l.scanner.Scan(text); len(findings) > 0 {
				rules := secrets.RuleIDs(findings)
				l.log.Warn("document rejected: potential secret detected",
					zap.String("file", name),
					zap.Strings("rule", rules))
				rep.Rejected = append(rep.Rejected, Rejection{File: name, Rules: rules})
				return nil
			}
		}

		rep.Docs = append(rep.Docs, docstore.Doc{
			Path:     path,
			Filename: name,
			Content:  text,
		})
		l.log.Debug("document loaded", zap.String("file", name))

		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return rep, fmt.Errorf("loading documents: %w", err)
		}
		l.log.Warn("document walk aborted", zap.String("root", l.root), zap.Error(err))
	}

	l.log.Info("documents loaded",
		zap.Int("loaded", len(rep.Docs)),
		zap.Int("rejected", len(rep.Rejected)),
		zap.Int("failed", len(rep.Failed)))

	return rep, nil
}

// walkError records an entry the walk could not visit. Unreadable
// subdirectories and documents count as failures; the walk continues past them.
func (l *Loader) walkError(rep *Report, path string, d fs.DirEntry, err error) error {
	if path == l.root {
		l.log.Warn("failed to access knowledge base", zap.String("root", l.root), zap.Error(err))
		return nil
	}

	name := l.filename(path)
	if d != nil && d.IsDir() {
		l.log.Warn("skipping unreadable directory", zap.String("file", name), zap.Error(err))
		rep.Failed = append(rep.Failed, Failure{File: name, Err: err})
		return fs.SkipDir
	}
	if l.findReader(path) == nil {
		l.log.Debug("unsupported file", zap.String("file", name), zap.Error(err))
		return nil
	}

	l.log.Warn("failed to load document", zap.String("file", name), zap.Error(err))
	rep.Failed = append(rep.Failed, Failure{File: name, Err: err})
	return nil
}

func (l *Loader) findReader(path string) FileReader {
	for _, r := range l.readers {
		if r.CanRead(path) {
			return r
		}
	}

	return nil
}

// filename is the slash-separated path relative to the root, so same-named
// files in different directories stay distinguishable.
func (l *Loader) filename(path string) string {
	rel, err := filepath.Rel(l.root, path)
	if err != nil {
		return filepath.Base(path)
	}

	return filepath.ToSlash(rel)
}
