package shell

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/darkroomlab/darkroom/internal/imageio"
)

// writeFixture encodes a small solid PNG and returns its path.
func writeFixture(t *testing.T, dir, name string, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	if err := imageio.Save(img, path); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

// runScript feeds a command script to a fresh shell and returns the shell
// and everything it printed.
func runScript(t *testing.T, script string) (*Shell, string) {
	t.Helper()
	var out bytes.Buffer
	sh := New(&out)
	if err := sh.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return sh, out.String()
}

func TestRun_OpenTransformSave(t *testing.T) {
	dir := t.TempDir()
	in := writeFixture(t, dir, "in.png", 10, 10, color.NRGBA{200, 100, 50, 255})
	outPath := filepath.Join(dir, "out.png")

	_, output := runScript(t, in2script(
		"open "+in,
		"negative",
		"save "+outPath,
	))
	if !strings.Contains(output, "opened "+in) {
		t.Errorf("missing open confirmation in %q", output)
	}
	if !strings.Contains(output, "negative: 10x10") {
		t.Errorf("missing transform confirmation in %q", output)
	}

	back, err := imageio.Load(outPath)
	if err != nil {
		t.Fatalf("loading saved file: %v", err)
	}
	r, g, b, _ := back.At(5, 5).RGBA()
	if uint8(r>>8) != 55 || uint8(g>>8) != 155 || uint8(b>>8) != 205 {
		t.Errorf("saved pixel: got (%d,%d,%d), want (55,155,205)", r>>8, g>>8, b>>8)
	}
}

// in2script joins command lines into one stdin script.
func in2script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestRun_UnknownCommandContinues(t *testing.T) {
	_, output := runScript(t, in2script("frobnicate", "help"))
	if !strings.Contains(output, `unknown command "frobnicate"`) {
		t.Errorf("missing unknown-command error in %q", output)
	}
	// The loop keeps going: help output follows the error.
	if !strings.Contains(output, "quit") {
		t.Errorf("help did not run after the error: %q", output)
	}
}

func TestRun_NoImageError(t *testing.T) {
	_, output := runScript(t, in2script("negative"))
	if !strings.Contains(output, "no image loaded") {
		t.Errorf("got %q, want a no-image error", output)
	}
}

func TestRun_SkipsBlanksAndComments(t *testing.T) {
	_, output := runScript(t, in2script("", "   ", "# a comment"))
	if output != "" {
		t.Errorf("blank lines and comments should produce no output, got %q", output)
	}
}

func TestRun_QuitStopsBeforeLaterCommands(t *testing.T) {
	_, output := runScript(t, in2script("quit", "frobnicate"))
	if strings.Contains(output, "unknown command") {
		t.Errorf("commands after quit should not run: %q", output)
	}
}

func TestRun_UsageOnWrongArity(t *testing.T) {
	_, output := runScript(t, in2script("crop 1 2 3"))
	if !strings.Contains(output, "usage: crop <x1> <y1> <x2> <y2>") {
		t.Errorf("got %q, want a crop usage message", output)
	}
}

func TestRun_BlendFlow(t *testing.T) {
	dir := t.TempDir()
	white := writeFixture(t, dir, "white.png", 8, 8, color.NRGBA{255, 255, 255, 255})
	black := writeFixture(t, dir, "black.png", 8, 8, color.NRGBA{0, 0, 0, 255})

	// Blend without a second image fails; after open2 it works.
	sh, output := runScript(t, in2script(
		"open "+white,
		"blend 0.5",
		"open2 "+black,
		"blend 0.5",
	))
	if !strings.Contains(output, "no second image loaded") {
		t.Errorf("missing second-image error in %q", output)
	}
	if !strings.Contains(output, "blend: 8x8") {
		t.Errorf("missing blend confirmation in %q", output)
	}

	got := sh.App().Current.(*image.NRGBA).NRGBAAt(4, 4)
	if got.R != 128 {
		t.Errorf("blended pixel: got %d, want 128", got.R)
	}
}

func TestRun_RevertRestoresOriginal(t *testing.T) {
	dir := t.TempDir()
	in := writeFixture(t, dir, "in.png", 6, 6, color.NRGBA{100, 100, 100, 255})

	sh, _ := runScript(t, in2script(
		"open "+in,
		"brightness 50",
		"revert",
	))

	r, _, _, _ := sh.App().Current.At(3, 3).RGBA()
	if uint8(r>>8) != 100 {
		t.Errorf("after revert: got %d, want 100", r>>8)
	}
}

func TestRun_SampleOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeFixture(t, dir, "red.png", 5, 5, color.NRGBA{255, 0, 0, 255})

	_, output := runScript(t, in2script("open "+in, "sample 2 2"))
	if !strings.Contains(output, "(2,2) #FF0000 rgb(255,0,0) hsl(0,100%,50%)") {
		t.Errorf("sample output wrong: %q", output)
	}
}

func TestRun_QuotedPaths(t *testing.T) {
	dir := t.TempDir()
	in := writeFixture(t, dir, "with space.png", 4, 4, color.NRGBA{9, 9, 9, 255})

	_, output := runScript(t, in2script(`open "`+in+`"`))
	if !strings.Contains(output, "opened "+in) {
		t.Errorf("quoted path not handled: %q", output)
	}
}

func TestRun_HelpListsEveryCommand(t *testing.T) {
	_, output := runScript(t, in2script("help"))
	for i := range Commands {
		if !strings.Contains(output, Commands[i].Name) {
			t.Errorf("help output missing %q", Commands[i].Name)
		}
	}
}

func TestCommandUsage(t *testing.T) {
	if got := lookup("zoom").Usage(); got != "zoom <factor> [cx] [cy]" {
		t.Errorf("zoom usage: got %q", got)
	}
	if got := lookup("info").Usage(); got != "info" {
		t.Errorf("info usage: got %q", got)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#FF8000")
	if err != nil {
		t.Fatalf("parseHexColor failed: %v", err)
	}
	if c != (color.NRGBA{255, 128, 0, 255}) {
		t.Errorf("got %v, want (255,128,0,255)", c)
	}

	if _, err := parseHexColor("red"); err == nil {
		t.Error("non-hex input should fail")
	}
	if _, err := parseHexColor("#FFF"); err == nil {
		t.Error("short input should fail")
	}
}
