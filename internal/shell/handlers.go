package shell

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/darkroomlab/darkroom/internal/imageio"
	"github.com/darkroomlab/darkroom/internal/inspect"
	"github.com/darkroomlab/darkroom/internal/transform"
)

// dispatch routes one tokenized command to its handler after a generic
// argument-count check against the registry.
func (s *Shell) dispatch(name string, args []string) error {
	cmd := lookup(name)
	if cmd == nil {
		return fmt.Errorf("unknown command %q (try: help)", name)
	}
	required := 0
	for _, a := range cmd.Args {
		if !a.Optional {
			required++
		}
	}
	if len(args) < required || len(args) > len(cmd.Args) {
		return fmt.Errorf("usage: %s", cmd.Usage())
	}

	switch name {
	case "open":
		return s.handleOpen(args[0])
	case "open2":
		return s.handleOpenSecond(args[0])
	case "save":
		return s.handleSave(args[0])
	case "info":
		return s.handleInfo()
	case "revert":
		return s.handleRevert()

	case "brightness":
		return s.handleBrightness(args[0])
	case "brightness-channel":
		return s.handleChannelBrightness(args[0], args[1])
	case "log":
		return s.handleLog(args[0])
	case "log-auto":
		return s.handleLogAuto()
	case "gamma":
		return s.handleGamma(args[0])

	case "crop":
		return s.handleCrop(args)
	case "zoom":
		return s.handleZoom(args)
	case "rotate":
		return s.handleRotate(args)

	case "equalize":
		return s.handleEqualize()
	case "histogram":
		return s.handleHistogram(args[0])

	case "blend", "blend-eq":
		return s.handleBlend(name, args[0])

	case "split":
		return s.handleSplit(args[0])
	case "cmyk":
		return s.handleCMYK(args[0])
	case "negative":
		return s.handleNegative()
	case "gray":
		return s.handleGray()
	case "binarize":
		return s.handleBinarize(args[0])

	case "edges":
		return s.handleEdges(args[0], args[1])
	case "blur":
		return s.handleBlur(args[0])
	case "sharpen":
		return s.handleSharpen()
	case "median":
		return s.handleMedian(args[0])

	case "sample":
		return s.handleSample(args[0], args[1])
	case "dominant":
		return s.handleDominant(args[0])

	case "help":
		return s.handleHelp()
	}
	return fmt.Errorf("command %q has no handler", name)
}

func argInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, s)
	}
	return v, nil
}

func argFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return v, nil
}

// parseHexColor parses "#RRGGBB" (leading '#' optional) into an opaque color.
func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("fill color %q must be #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("fill color %q must be #RRGGBB", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func dims(img image.Image) string {
	b := img.Bounds()
	return fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
}

// setCurrent installs a transform result and reports its size.
func (s *Shell) setCurrent(verb string, img image.Image) {
	s.app.Current = img
	fmt.Fprintf(s.out, "%s: %s\n", verb, dims(img))
}

func (s *Shell) handleOpen(path string) error {
	img, err := s.app.Cache.Load(path)
	if err != nil {
		return err
	}
	info, err := imageio.LoadInfo(s.app.Cache, path)
	if err != nil {
		return err
	}
	s.app.Current = img
	s.app.Original = img
	s.app.Path = path
	fmt.Fprintf(s.out, "opened %s: %dx%d %s, %d bytes\n",
		path, info.Width, info.Height, info.Format, info.FileSizeBytes)
	return nil
}

func (s *Shell) handleOpenSecond(path string) error {
	img, err := s.app.Cache.Load(path)
	if err != nil {
		return err
	}
	s.app.Second = img
	fmt.Fprintf(s.out, "second image %s: %s\n", path, dims(img))
	return nil
}

func (s *Shell) handleSave(path string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	if err := imageio.Save(img, path); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "saved %s\n", path)
	return nil
}

func (s *Shell) handleInfo() error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	ch := 3
	if _, ok := img.(*image.Gray); ok {
		ch = 1
	}
	fmt.Fprintf(s.out, "%s, %d channel(s), from %s\n", dims(img), ch, s.app.Path)
	return nil
}

func (s *Shell) handleRevert() error {
	if s.app.Original == nil {
		return errNoImage
	}
	s.setCurrent("reverted", s.app.Original)
	return nil
}

func (s *Shell) handleBrightness(betaArg string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	beta, err := argInt("beta", betaArg)
	if err != nil {
		return err
	}
	out, err := transform.AdjustBrightness(img, beta)
	if err != nil {
		return err
	}
	s.setCurrent("brightness", out)
	return nil
}

func (s *Shell) handleChannelBrightness(chArg, betaArg string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	ch, err := transform.ParseChannel(chArg)
	if err != nil {
		return err
	}
	beta, err := argInt("beta", betaArg)
	if err != nil {
		return err
	}
	out, err := transform.AdjustChannelBrightness(img, ch, beta)
	if err != nil {
		return err
	}
	s.setCurrent("brightness-channel "+ch.String(), out)
	return nil
}

func (s *Shell) handleLog(cArg string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	c, err := argFloat("c", cArg)
	if err != nil {
		return err
	}
	out, err := transform.LogContrast(img, c)
	if err != nil {
		return err
	}
	s.setCurrent("log", out)
	return nil
}

func (s *Shell) handleLogAuto() error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	s.setCurrent("log-auto", transform.LogContrastNormalized(img))
	return nil
}

func (s *Shell) handleGamma(gArg string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	g, err := argFloat("gamma", gArg)
	if err != nil {
		return err
	}
	out, err := transform.Gamma(img, g)
	if err != nil {
		return err
	}
	s.setCurrent("gamma", out)
	return nil
}

func (s *Shell) handleCrop(args []string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	var r transform.Region
	names := []string{"x1", "y1", "x2", "y2"}
	for i, dst := range []*int{&r.X1, &r.Y1, &r.X2, &r.Y2} {
		v, err := argInt(names[i], args[i])
		if err != nil {
			return err
		}
		*dst = v
	}
	out, err := transform.Crop(img, r)
	if err != nil {
		return err
	}
	s.setCurrent("crop", out)
	return nil
}

func (s *Shell) handleZoom(args []string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	factor, err := argFloat("factor", args[0])
	if err != nil {
		return err
	}

	var out *image.NRGBA
	switch len(args) {
	case 1:
		out, err = transform.ZoomCentered(img, factor)
	case 3:
		var cx, cy int
		if cx, err = argInt("cx", args[1]); err != nil {
			return err
		}
		if cy, err = argInt("cy", args[2]); err != nil {
			return err
		}
		out, err = transform.Zoom(img, factor, cx, cy)
	default:
		return fmt.Errorf("usage: %s", lookup("zoom").Usage())
	}
	if err != nil {
		return err
	}
	s.setCurrent("zoom", out)
	return nil
}

func (s *Shell) handleRotate(args []string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	degrees, err := argFloat("degrees", args[0])
	if err != nil {
		return err
	}
	var opts *transform.RotateOptions
	if len(args) == 2 {
		fill, err := parseHexColor(args[1])
		if err != nil {
			return err
		}
		opts = &transform.RotateOptions{Fill: fill}
	}
	s.setCurrent("rotate", transform.Rotate(img, degrees, opts))
	return nil
}

func (s *Shell) handleEqualize() error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	s.setCurrent("equalize", transform.Equalize(img))
	return nil
}

func (s *Shell) handleHistogram(path string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	plot, err := inspect.RenderHistogram(transform.ComputeHistogram(img), 512, 256)
	if err != nil {
		return err
	}
	if err := imageio.Save(plot, path); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "histogram plot saved to %s\n", path)
	return nil
}

func (s *Shell) handleBlend(name, alphaArg string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	if s.app.Second == nil {
		return fmt.Errorf("no second image loaded (use: open2 <path>)")
	}
	alpha, err := argFloat("alpha", alphaArg)
	if err != nil {
		return err
	}

	var out image.Image
	if name == "blend-eq" {
		out, err = transform.BlendEqualized(img, s.app.Second, alpha)
	} else {
		out, err = transform.Blend(img, s.app.Second, alpha)
	}
	if err != nil {
		return err
	}
	s.setCurrent(name, out)
	return nil
}

func (s *Shell) handleSplit(prefix string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	r, g, b := transform.SplitRGB(img)
	for _, plane := range []struct {
		suffix string
		img    image.Image
	}{{"_r.png", r}, {"_g.png", g}, {"_b.png", b}} {
		if err := imageio.Save(plane.img, prefix+plane.suffix); err != nil {
			return err
		}
	}
	fmt.Fprintf(s.out, "wrote %s_r.png, %s_g.png, %s_b.png\n", prefix, prefix, prefix)
	return nil
}

func (s *Shell) handleCMYK(prefix string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	c, m, y, k := transform.ToCMYK(img)
	for _, plane := range []struct {
		suffix string
		img    image.Image
	}{{"_c.png", c}, {"_m.png", m}, {"_y.png", y}, {"_k.png", k}} {
		if err := imageio.Save(plane.img, prefix+plane.suffix); err != nil {
			return err
		}
	}
	fmt.Fprintf(s.out, "wrote %s_c.png, %s_m.png, %s_y.png, %s_k.png\n", prefix, prefix, prefix, prefix)
	return nil
}

func (s *Shell) handleNegative() error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	s.setCurrent("negative", transform.Negative(img))
	return nil
}

func (s *Shell) handleGray() error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	s.setCurrent("gray", transform.Grayscale(img))
	return nil
}

func (s *Shell) handleBinarize(tArg string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	t, err := argInt("threshold", tArg)
	if err != nil {
		return err
	}
	out, err := transform.Binarize(img, t)
	if err != nil {
		return err
	}
	s.setCurrent("binarize", out)
	return nil
}

func (s *Shell) handleEdges(lowArg, highArg string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	low, err := argInt("low", lowArg)
	if err != nil {
		return err
	}
	high, err := argInt("high", highArg)
	if err != nil {
		return err
	}
	out, err := transform.DetectEdges(img, low, high)
	if err != nil {
		return err
	}
	s.setCurrent("edges", out)
	return nil
}

func (s *Shell) handleBlur(radiusArg string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	radius, err := argFloat("radius", radiusArg)
	if err != nil {
		return err
	}
	out, err := transform.GaussianBlur(img, radius)
	if err != nil {
		return err
	}
	s.setCurrent("blur", out)
	return nil
}

func (s *Shell) handleSharpen() error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	s.setCurrent("sharpen", transform.Sharpen(img))
	return nil
}

func (s *Shell) handleMedian(radiusArg string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	radius, err := argFloat("radius", radiusArg)
	if err != nil {
		return err
	}
	out, err := transform.Median(img, radius)
	if err != nil {
		return err
	}
	s.setCurrent("median", out)
	return nil
}

func (s *Shell) handleSample(xArg, yArg string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	x, err := argInt("x", xArg)
	if err != nil {
		return err
	}
	y, err := argInt("y", yArg)
	if err != nil {
		return err
	}
	c, err := inspect.SampleColor(img, x, y)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "(%d,%d) %s rgb(%d,%d,%d) hsl(%d,%d%%,%d%%)\n",
		x, y, c.Hex, c.RGB.R, c.RGB.G, c.RGB.B, c.HSL.H, c.HSL.S, c.HSL.L)
	return nil
}

func (s *Shell) handleDominant(countArg string) error {
	img, err := s.app.require()
	if err != nil {
		return err
	}
	count, err := argInt("count", countArg)
	if err != nil {
		return err
	}
	colors, err := inspect.DominantColors(img, count, nil)
	if err != nil {
		return err
	}
	for _, c := range colors {
		fmt.Fprintf(s.out, "%s %.1f%%\n", c.Hex, c.Percentage)
	}
	return nil
}

func (s *Shell) handleHelp() error {
	for i := range Commands {
		fmt.Fprintf(s.out, "  %-40s %s\n", Commands[i].Usage(), Commands[i].Help)
	}
	return nil
}
