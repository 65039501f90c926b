package file

import (
	"context"
	"fmt"
	"os"
)

// Source serves frames from a file path that an external capture process
// keeps overwriting. Each Capture reads the latest snapshot.
type Source struct {
	Path string
}

func (s Source) Capture(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("capture frame: %w", err)
	}
	return data, nil
}
