// Package output renders Shadbala reports for humans and machines.
package output

import (
	"io"
	"sync"

	"shadbala/core/engine"
	"shadbala/internal/errors"
)

// Format represents an output format type
type Format string

const (
	// FormatTable is a human-readable table
	FormatTable Format = "table"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Options tunes rendering
type Options struct {
	// ShowBreakdown includes per-component sub-terms in the output
	ShowBreakdown bool
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report
	Render(w io.Writer, report *engine.Report, opts Options) error
}

var (
	registryMu sync.RWMutex
	registry   = map[Format]Formatter{}
)

// Register adds a formatter to the registry, replacing any previous one for
// its format
func Register(f Formatter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[f.Format()] = f
}

// ByFormat returns the registered formatter for a format
func ByFormat(format Format) (Formatter, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if f, ok := registry[format]; ok {
		return f, nil
	}
	return nil, errors.Newf(errors.TypeConfig, "no formatter registered for %q", format)
}

func init() {
	Register(NewTableFormatter())
	Register(NewJSONFormatter())
}
