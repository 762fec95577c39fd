// Package workspace maintains parsed control files for a directory tree.
// It caches the document and diagnostics for every control file below a
// root, re-parses files as their contents change, and serves the results
// over the Language Server Protocol.
package workspace

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dhamidi/debctrl/control"
	"github.com/dhamidi/debctrl/parser"
)

// Severity grades a collected diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityCritical
)

// Diagnostic is one warning or critical error captured during a parse.
// Context is nil for diagnostics without a position, such as file errors.
type Diagnostic struct {
	Severity Severity
	Context  *parser.Context
	Message  string
}

// Recorder is a parser.Handler that collects diagnostics instead of
// printing them. Contexts are copied, so recorded diagnostics stay valid
// after the parse moves on.
type Recorder struct {
	Diags []Diagnostic
}

func (r *Recorder) Warn(ctx *parser.Context, message string) {
	r.record(SeverityWarning, ctx, message)
}

func (r *Recorder) Critical(ctx *parser.Context, message string) {
	r.record(SeverityCritical, ctx, message)
}

func (r *Recorder) record(severity Severity, ctx *parser.Context, message string) {
	diag := Diagnostic{Severity: severity, Message: message}
	if ctx != nil {
		c := *ctx
		diag.Context = &c
	}
	r.Diags = append(r.Diags, diag)
}

// FileInfo is the cached parse of one control file.
type FileInfo struct {
	Path     string
	Content  []byte
	Doc      *parser.Document
	Diags    []Diagnostic
	ParseErr error
}

// Workspace caches parsed control files under a root directory. The map is
// guarded for concurrent readers; each contained document is immutable
// once its parse finished.
type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// IsControlFile reports whether path names a file this workspace manages:
// a debian/control file, a source control file (.dsc) or an upload control
// file (.changes).
func IsControlFile(path string) bool {
	base := filepath.Base(path)
	if base == "control" {
		return filepath.Base(filepath.Dir(path)) == "debian"
	}
	switch filepath.Ext(base) {
	case ".dsc", ".changes":
		return true
	}
	return false
}

// ScanAll walks the root directory and parses every control file in it.
func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if IsControlFile(path) {
			w.ScanFile(path)
		}
		return nil
	})
}

// ScanFile reads path from disk and (re)parses it into the cache.
func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return w.UpdateFile(path, content)
}

// UpdateFile parses content as the new state of path. Editor buffers pass
// through here without touching disk.
func (w *Workspace) UpdateFile(path string, content []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.updateFileLocked(path, content)
}

func (w *Workspace) updateFileLocked(path string, content []byte) error {
	// Documents are single use, so every update parses into a fresh one.
	doc := parser.New()
	rec := &Recorder{}
	doc.SetHandler(rec)
	parseErr := doc.Read(bytes.NewReader(content), path)

	if parseErr == nil {
		if _, err := control.Parse(doc); err != nil {
			rec.Critical(nil, err.Error())
		}
	}

	w.files[path] = &FileInfo{
		Path:     path,
		Content:  content,
		Doc:      doc,
		Diags:    rec.Diags,
		ParseErr: parseErr,
	}
	return parseErr
}

// RemoveFile drops path from the cache.
func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

// File returns the cached parse for path, or nil if unknown.
func (w *Workspace) File(path string) *FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns the cached parses in path order.
func (w *Workspace) Files() []*FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()

	result := make([]*FileInfo, 0, len(w.files))
	for _, file := range w.files {
		result = append(result, file)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})
	return result
}
