// Package assets provides the sprite catalog the game draws from.
// The catalog loads asynchronously; until it is ready every lookup reports
// the sprite as missing so callers can skip drawing without failing.
package assets

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/crossing/internal/core"
)

//go:embed sprites.yaml
var defaultSpritesYAML []byte

var (
	// ErrNotReady is returned by Wait when the context ends before loading completes.
	ErrNotReady = errors.New("assets: catalog not ready")
	// ErrUnknownSprite is returned by Require for names missing from the table.
	ErrUnknownSprite = errors.New("assets: unknown sprite")
)

// Sprite is one region of the sprite sheet.
type Sprite struct {
	Name   string
	SrcX   int
	SrcY   int
	Width  int
	Height int
	Glyph  string     // Terminal stand-in for the image
	Color  core.Color // Terminal color for the glyph
}

// Source looks up sprites by name. A false result means the sprite cannot be
// drawn yet (not loaded) or at all (unknown name).
type Source interface {
	Sprite(name string) (Sprite, bool)
}

type spriteDef struct {
	Name   string `yaml:"name"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Glyph  string `yaml:"glyph"`
	Color  string `yaml:"color"`
}

type sheetDef struct {
	Sheet   string      `yaml:"sheet"`
	Sprites []spriteDef `yaml:"sprites"`
}

// Catalog holds the sprite table once it has been loaded.
type Catalog struct {
	path    string // Optional override file; empty means embedded table
	once    sync.Once
	ready   chan struct{}
	sprites map[string]Sprite
	err     error
}

// NewCatalog creates a catalog that will read its table from path, or from
// the embedded default when path is empty. Nothing is loaded until Load.
func NewCatalog(path string) *Catalog {
	return &Catalog{
		path:  path,
		ready: make(chan struct{}),
	}
}

// Builtin returns a catalog of the embedded table that is already loaded.
func Builtin() *Catalog {
	c := NewCatalog("")
	c.loadNow()
	return c
}

// Load starts loading in the background. It returns immediately; use Ready
// or Wait to find out when sprites become available. Calling Load more than
// once has no further effect.
func (c *Catalog) Load(ctx context.Context) {
	c.once.Do(func() {
		go func() {
			if err := ctx.Err(); err != nil {
				c.err = err
				close(c.ready)
				return
			}
			c.sprites, c.err = readTable(c.path)
			close(c.ready)
		}()
	})
}

func (c *Catalog) loadNow() {
	c.once.Do(func() {
		c.sprites, c.err = readTable(c.path)
		close(c.ready)
	})
}

// Ready returns a channel that is closed once loading has finished,
// successfully or not.
func (c *Catalog) Ready() <-chan struct{} {
	return c.ready
}

// Wait blocks until loading finishes or ctx is done.
func (c *Catalog) Wait(ctx context.Context) error {
	select {
	case <-c.ready:
		return c.err
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrNotReady, ctx.Err())
	}
}

// Err reports the load error, if loading has finished and failed.
func (c *Catalog) Err() error {
	select {
	case <-c.ready:
		return c.err
	default:
		return nil
	}
}

// Sprite returns the named sprite. It reports false while the catalog is
// still loading, after a failed load, or for unknown names.
func (c *Catalog) Sprite(name string) (Sprite, bool) {
	select {
	case <-c.ready:
	default:
		return Sprite{}, false
	}
	if c.err != nil {
		return Sprite{}, false
	}
	s, ok := c.sprites[name]
	return s, ok
}

// Require checks that every named sprite is present in a loaded catalog.
func (c *Catalog) Require(names ...string) error {
	for _, name := range names {
		if _, ok := c.Sprite(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSprite, name)
		}
	}
	return nil
}

// Len returns the number of sprites in the loaded table.
func (c *Catalog) Len() int {
	select {
	case <-c.ready:
		return len(c.sprites)
	default:
		return 0
	}
}

func readTable(path string) (map[string]Sprite, error) {
	data := defaultSpritesYAML
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("assets: failed to read sprite table %s: %w", path, err)
		}
		data = raw
	}
	return parseTable(data)
}

func parseTable(data []byte) (map[string]Sprite, error) {
	var def sheetDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("assets: failed to parse sprite table: %w", err)
	}
	if len(def.Sprites) == 0 {
		return nil, errors.New("assets: sprite table is empty")
	}

	sprites := make(map[string]Sprite, len(def.Sprites))
	for _, d := range def.Sprites {
		if d.Name == "" {
			return nil, errors.New("assets: sprite without name")
		}
		if d.Width <= 0 || d.Height <= 0 {
			return nil, fmt.Errorf("assets: sprite %q has invalid size %dx%d", d.Name, d.Width, d.Height)
		}
		color, _ := core.ParseColor(d.Color)
		glyph := d.Glyph
		if glyph == "" {
			glyph = "?"
		}
		sprites[d.Name] = Sprite{
			Name:   d.Name,
			SrcX:   d.X,
			SrcY:   d.Y,
			Width:  d.Width,
			Height: d.Height,
			Glyph:  glyph,
			Color:  color,
		}
	}
	return sprites, nil
}
