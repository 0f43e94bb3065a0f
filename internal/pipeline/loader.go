package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/okrenz/manuscan/internal/model"
)

// Loader reads manuscript files from disk with a size cap, so one
// runaway file cannot exhaust memory in batch mode.
type Loader struct {
	maxBytes int64
}

// NewLoader creates a loader. maxBytes <= 0 means no cap.
func NewLoader(maxBytes int64) *Loader {
	return &Loader{maxBytes: maxBytes}
}

// Load reads a manuscript file. The manuscript ID is derived from the
// file name without its extension.
func (l *Loader) Load(path, genre string) (model.Manuscript, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Manuscript{}, fmt.Errorf("open manuscript: %w", err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if l.maxBytes > 0 {
		r = io.LimitReader(f, l.maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Manuscript{}, fmt.Errorf("read manuscript: %w", err)
	}
	if l.maxBytes > 0 && int64(len(data)) > l.maxBytes {
		return model.Manuscript{}, fmt.Errorf("manuscript exceeds %d bytes", l.maxBytes)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))
	return model.NewManuscript(id, string(data), genre), nil
}
