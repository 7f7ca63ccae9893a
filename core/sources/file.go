package sources

import (
	"context"
	"fmt"

	"github.com/alexmk92/combobox/core"
	"github.com/alexmk92/combobox/core/types"
)

// FileSource loads options from a yaml or grouped key/value file.
type FileSource struct {
	path string
}

var _ types.Source = (*FileSource)(nil)

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) ([]types.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader := core.NewOptionsReader()
	if err := reader.LoadFile(s.path); err != nil {
		return nil, fmt.Errorf("failed to load options from %s: %w", s.path, err)
	}

	return reader.Entries(), nil
}

func (s *FileSource) Name() string {
	return "file"
}
