package shell

import (
	"fmt"
	"strings"
)

// ArgSpec describes one positional argument of a shell command. Fields are
// textual and feed usage/help output; handlers do the actual parsing.
type ArgSpec struct {
	Name     string // human name, shown in usage
	Type     string // "int", "float", "string", "path"
	Optional bool
	Help     string
}

// Command describes a single shell command for dispatch and help.
type Command struct {
	Name string
	Args []ArgSpec
	Help string
}

// Usage renders a one-line usage string such as "crop <x1> <y1> <x2> <y2>".
func (c *Command) Usage() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	for _, a := range c.Args {
		if a.Optional {
			fmt.Fprintf(&sb, " [%s]", a.Name)
		} else {
			fmt.Fprintf(&sb, " <%s>", a.Name)
		}
	}
	return sb.String()
}

// Commands is the authoritative list of shell commands, in help order.
// Keep it synchronized with the dispatch switch in handlers.go.
var Commands = []Command{
	{Name: "open", Help: "load an image and make it the current image",
		Args: []ArgSpec{{Name: "path", Type: "path", Help: "image file (jpg/png/bmp/gif/tif)"}}},
	{Name: "open2", Help: "load the second image used by blend commands",
		Args: []ArgSpec{{Name: "path", Type: "path", Help: "image file"}}},
	{Name: "save", Help: "save the current image; format follows the extension",
		Args: []ArgSpec{{Name: "path", Type: "path", Help: "output file"}}},
	{Name: "info", Help: "print dimensions, format and file size of the current image"},
	{Name: "revert", Help: "restore the current image as it was loaded"},

	{Name: "brightness", Help: "add an offset to every channel",
		Args: []ArgSpec{{Name: "beta", Type: "int", Help: "offset in [-255,255]"}}},
	{Name: "brightness-channel", Help: "add an offset to one channel only",
		Args: []ArgSpec{
			{Name: "channel", Type: "string", Help: "R, G or B"},
			{Name: "beta", Type: "int", Help: "offset in [-255,255]"}}},
	{Name: "log", Help: "logarithmic contrast: clamp(c*ln(1+v))",
		Args: []ArgSpec{{Name: "c", Type: "float", Help: "positive scale"}}},
	{Name: "log-auto", Help: "logarithmic contrast scaled so 255 maps to 255"},
	{Name: "gamma", Help: "gamma correction: <1 brightens, >1 darkens",
		Args: []ArgSpec{{Name: "gamma", Type: "float", Help: "positive exponent"}}},

	{Name: "crop", Help: "crop to a rectangle (top-left inclusive, bottom-right exclusive)",
		Args: []ArgSpec{
			{Name: "x1", Type: "int"}, {Name: "y1", Type: "int"},
			{Name: "x2", Type: "int"}, {Name: "y2", Type: "int"}}},
	{Name: "zoom", Help: "magnify with bilinear interpolation",
		Args: []ArgSpec{
			{Name: "factor", Type: "float", Help: "positive zoom factor"},
			{Name: "cx", Type: "int", Optional: true, Help: "zoom center X (default: image center)"},
			{Name: "cy", Type: "int", Optional: true, Help: "zoom center Y"}}},
	{Name: "rotate", Help: "rotate counter-clockwise about the center",
		Args: []ArgSpec{
			{Name: "degrees", Type: "float"},
			{Name: "fill", Type: "string", Optional: true, Help: "corner fill as #RRGGBB (default white)"}}},

	{Name: "equalize", Help: "per-channel histogram equalization"},
	{Name: "histogram", Help: "render the RGB histogram plot to a file",
		Args: []ArgSpec{{Name: "path", Type: "path", Help: "output image file"}}},

	{Name: "blend", Help: "alpha-blend the current image with the second image",
		Args: []ArgSpec{{Name: "alpha", Type: "float", Help: "weight of the current image, in [0,1]"}}},
	{Name: "blend-eq", Help: "equalize both images, then blend",
		Args: []ArgSpec{{Name: "alpha", Type: "float", Help: "weight in [0,1]"}}},

	{Name: "split", Help: "write the R, G and B channels as <prefix>_r/g/b.png",
		Args: []ArgSpec{{Name: "prefix", Type: "path"}}},
	{Name: "cmyk", Help: "write the C, M, Y and K planes as <prefix>_c/m/y/k.png",
		Args: []ArgSpec{{Name: "prefix", Type: "path"}}},
	{Name: "negative", Help: "invert every channel (255 - v)"},
	{Name: "gray", Help: "convert to single-channel grayscale (BT.601)"},
	{Name: "binarize", Help: "threshold to pure black and white",
		Args: []ArgSpec{{Name: "threshold", Type: "int", Help: "pixels strictly above become 255"}}},

	{Name: "edges", Help: "Canny edge detection",
		Args: []ArgSpec{{Name: "low", Type: "int"}, {Name: "high", Type: "int"}}},
	{Name: "blur", Help: "Gaussian blur",
		Args: []ArgSpec{{Name: "radius", Type: "float"}}},
	{Name: "sharpen", Help: "sharpen with an unsharp-style kernel"},
	{Name: "median", Help: "median noise filter",
		Args: []ArgSpec{{Name: "radius", Type: "float"}}},

	{Name: "sample", Help: "print the color at a pixel",
		Args: []ArgSpec{{Name: "x", Type: "int"}, {Name: "y", Type: "int"}}},
	{Name: "dominant", Help: "print the most frequent colors",
		Args: []ArgSpec{{Name: "count", Type: "int"}}},

	{Name: "help", Help: "list commands"},
	{Name: "quit", Help: "exit the shell"},
}

// lookup finds a command by name, or nil.
func lookup(name string) *Command {
	for i := range Commands {
		if Commands[i].Name == name {
			return &Commands[i]
		}
	}
	return nil
}
