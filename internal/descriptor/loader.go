package descriptor

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"
)

// Loader reads descriptors from disk or from an fs.FS.
// It keeps no state between loads, so repeated loads of the same
// input yield equal values.
type Loader struct {
	mu     sync.RWMutex
	logger *slog.Logger
	format Format
}

// NewLoader creates a new descriptor loader.
// A nil logger uses slog.Default at load time.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// SetFormat forces a descriptor format instead of detecting it from the
// file extension. FormatAuto restores detection.
func (l *Loader) SetFormat(format Format) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.format = format
}

// Load reads and validates the descriptor at path.
//
// It fails with *NotFoundError if the file does not exist, *ParseError if it
// is not valid structured data and *ValidationError if content is missing or
// a field has the wrong shape.
func (l *Loader) Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("read descriptor %s: %w", path, err)
	}
	return l.decode(path, data, l.FormatFor(path))
}

// LoadFS is Load over an fs.FS.
func (l *Loader) LoadFS(fsys fs.FS, name string) (*Descriptor, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: name, Err: err}
		}
		return nil, fmt.Errorf("read descriptor %s: %w", name, err)
	}
	return l.decode(name, data, l.FormatFor(name))
}

// Decode validates in-memory descriptor bytes.
// FormatAuto decodes as JSON.
func (l *Loader) Decode(data []byte, format Format) (*Descriptor, error) {
	if format == FormatAuto {
		format = FormatJSON
	}
	return l.decode("", data, format)
}

// FormatFor reports the format Load would use for path: the forced format
// if one is set, otherwise the one detected from the extension.
func (l *Loader) FormatFor(path string) Format {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.format != FormatAuto {
		return l.format
	}
	return DetectFormat(path)
}

func (l *Loader) log() *slog.Logger {
	if l.logger == nil {
		return slog.Default()
	}
	return l.logger
}

func (l *Loader) decode(path string, data []byte, format Format) (*Descriptor, error) {
	raw, err := unmarshal(data, format)
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}

	logger := l.log()
	b := &builder{logger: logger.With("descriptor", path)}
	d := b.build(raw)
	if err := b.err(); err != nil {
		return nil, err
	}

	logger.Debug("loaded descriptor",
		"path", path,
		"format", format,
		"content", len(d.Content),
		"colors", len(d.Theme.Extend.Colors),
		"fonts", len(d.Theme.Extend.FontFamily),
		"plugins", len(d.Plugins),
	)
	return d, nil
}

var defaultLoader = NewLoader(nil)

// Load reads the descriptor at path using the default loader.
func Load(path string) (*Descriptor, error) {
	return defaultLoader.Load(path)
}

// LoadFS reads a descriptor from fsys using the default loader.
func LoadFS(fsys fs.FS, name string) (*Descriptor, error) {
	return defaultLoader.LoadFS(fsys, name)
}

// Decode validates in-memory descriptor bytes using the default loader.
func Decode(data []byte, format Format) (*Descriptor, error) {
	return defaultLoader.Decode(data, format)
}
