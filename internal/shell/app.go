package shell

import (
	"errors"
	"image"

	"github.com/darkroomlab/darkroom/internal/imageio"
)

// App holds the state of one editing session.
type App struct {
	// Cache de-duplicates decoding when the same file is opened repeatedly.
	Cache *imageio.Cache

	// Current is the working image every transform command reads and
	// replaces. Nil until an image is opened.
	Current image.Image

	// Original is Current as it was loaded, kept for revert.
	Original image.Image

	// Second is the fusion operand set by open2. Nil until set.
	Second image.Image

	// Path is the file Current was loaded from.
	Path string
}

// NewApp returns an empty session.
func NewApp() *App {
	return &App{Cache: imageio.NewCache()}
}

var errNoImage = errors.New("no image loaded (use: open <path>)")

// require returns the current image or a uniform error when none is loaded.
func (a *App) require() (image.Image, error) {
	if a.Current == nil {
		return nil, errNoImage
	}
	return a.Current, nil
}
