// Package filesystem reads saved portal pages from local disk.
package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.DocumentSource = (*Connector)(nil)

// Connector lists either an explicit set of files or the matching files
// of one directory.
type Connector struct {
	rootPath  string
	extension string
	files     []string
}

// New creates a connector. When files is non-empty it is used as given and
// rootPath is ignored; otherwise rootPath is scanned for files ending in
// extension (compared case-insensitively).
func New(rootPath, extension string, files []string) *Connector {
	return &Connector{
		rootPath:  rootPath,
		extension: extension,
		files:     ResolvePaths(files),
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// List reads every document. Files that cannot be read are returned with
// Err set so the extractor can report and skip them.
func (c *Connector) List(ctx context.Context) ([]domain.RawDocument, error) {
	paths, err := c.paths()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", c.describe(), domain.ErrNoDocuments)
	}

	docs := make([]domain.RawDocument, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := readFile(path)
		docs = append(docs, domain.RawDocument{URI: path, Content: content, Err: err})
	}
	return docs, nil
}

// paths returns the documents to read in a stable order.
func (c *Connector) paths() ([]string, error) {
	if len(c.files) > 0 {
		out := make([]string, len(c.files))
		copy(out, c.files)
		return out, nil
	}

	entries, err := os.ReadDir(c.rootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", c.rootPath, domain.ErrNoDocuments)
		}
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !c.matches(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(c.rootPath, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func (c *Connector) matches(name string) bool {
	if c.extension == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(c.extension))
}

func (c *Connector) describe() string {
	if len(c.files) > 0 {
		return strings.Join(c.files, ", ")
	}
	return c.rootPath
}

// readFile reads the whole file; the handle is closed before returning.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return content, nil
}
