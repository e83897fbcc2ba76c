package imageio

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedFormat reports a file whose extension maps to no supported
// image codec. Supported extensions: .jpg, .jpeg, .png, .bmp, .gif, .tif,
// .tiff.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format returns the codec for path, or ErrUnsupportedFormat.
func Format(path string) (imaging.Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", filepath.Ext(path), ErrUnsupportedFormat)
	}
	return f, nil
}

// Load decodes the image at path.
func Load(path string) (image.Image, error) {
	if _, err := Format(path); err != nil {
		return nil, err
	}
	img, err := imaging.Open(path)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedFormat) {
			return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

// Save encodes img to path using the codec selected by the extension.
func Save(img image.Image, path string) error {
	if _, err := Format(path); err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Cache provides thread-safe caching of decoded images keyed by file path,
// so repeated loads of the same file avoid redundant disk reads. Cached
// images stay in memory until Evict or Clear.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache creates an empty image cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{images: make(map[string]image.Image)}
}

// Load returns the cached image for path, decoding and caching it on the
// first request. The exact path string is the cache key, so relative and
// absolute paths to the same file are separate entries.
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()
	return img, nil
}

// Evict removes one path from the cache; unknown paths are ignored.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear drops every cached image.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Info holds metadata about an image file.
type Info struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"`
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// LoadInfo loads path through the cache and reports its dimensions, format
// (by extension) and file size.
func LoadInfo(cache *Cache, path string) (*Info, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	f, err := Format(path)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	return &Info{
		Width:         b.Dx(),
		Height:        b.Dy(),
		Format:        f.String(),
		FileSizeBytes: stat.Size(),
	}, nil
}
