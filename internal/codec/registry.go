// Package codec provides a global registry of sketch file formats.
// Formats register themselves in init() functions, so commands can pick
// a codec by name or by file extension without hardcoded dependencies.
package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

var (
	// ErrMalformedData is returned when encoded data cannot be decoded.
	ErrMalformedData = errors.New("codec: malformed data")

	// ErrInvalidGlyph is returned when a cell holds a rune that is not a
	// Unicode scalar value and could not be decoded again.
	ErrInvalidGlyph = errors.New("codec: invalid glyph")

	// ErrUnknownFormat is returned when no codec matches a name or extension.
	ErrUnknownFormat = errors.New("codec: unknown format")
)

// Codec converts between a cell buffer and a byte stream.
type Codec interface {
	// Name returns a unique identifier for this format (e.g., "bin", "txt").
	Name() string

	// Description returns a human-readable summary for listings.
	Description() string

	// Extensions returns the file extensions this format claims, with the dot.
	Extensions() []string

	// Encode writes rows to w.
	Encode(w io.Writer, rows [][]core.Cell) error

	// Decode reads a buffer from r. Rows are not checked for rectangularity;
	// the canvas does that when it adopts them.
	Decode(r io.Reader) ([][]core.Cell, error)
}

// Info contains metadata about a registered codec.
type Info struct {
	Name        string
	Description string
	Extensions  []string
}

var (
	codecs     = make(map[string]Codec)
	extensions = make(map[string]string)
	mu         sync.RWMutex
)

// Register adds a codec to the registry.
// Typically called from a codec's init() function.
// Panics if the name or one of the extensions is already registered.
func Register(c Codec) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := codecs[c.Name()]; exists {
		panic(fmt.Sprintf("codec: format %q already registered", c.Name()))
	}
	for _, ext := range c.Extensions() {
		ext = strings.ToLower(ext)
		if owner, exists := extensions[ext]; exists {
			panic(fmt.Sprintf("codec: extension %q already registered by %q", ext, owner))
		}
		extensions[ext] = c.Name()
	}

	codecs[c.Name()] = c
}

// List returns information about all registered codecs, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(codecs))
	for name, c := range codecs {
		result = append(result, Info{
			Name:        name,
			Description: c.Description(),
			Extensions:  c.Extensions(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec, error) {
	mu.RLock()
	defer mu.RUnlock()

	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return c, nil
}

// ForPath returns the codec claiming the extension of path.
func ForPath(path string) (Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))

	mu.RLock()
	name, ok := extensions[ext]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: no codec for extension %q", ErrUnknownFormat, ext)
	}
	return Lookup(name)
}

// Exists checks if a codec with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := codecs[name]
	return ok
}
