package codec

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

// ReadFile decodes the file at path with the codec claiming its extension.
func ReadFile(path string) (*core.Canvas, error) {
	c, err := ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	defer f.Close()

	rows, err := c.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", path, err)
	}

	canvas, err := core.NewCanvasWithBuffer(rows)
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", path, err)
	}
	return canvas, nil
}

// WriteFile encodes canvas into path with the codec claiming its extension,
// creating parent directories as needed.
func WriteFile(path string, canvas *core.Canvas) error {
	c, err := ForPath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("codec: cannot create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: %w", err)
	}

	if err := c.Encode(f, canvas.Buffer()); err != nil {
		f.Close()
		return fmt.Errorf("codec: %s: %w", path, err)
	}
	return f.Close()
}
