package main

import (
	"flag"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/image/draw"

	"github.com/sharplab/pc1500emu/internal/display"
	"github.com/sharplab/pc1500emu/internal/system"
)

type cliFlags struct {
	Config string

	Headless bool
	Frames   int
	PNGOut   string
	Expect   string
	PNGScale int
}

func parseFlags() cliFlags {
	var f cliFlags
	flag.StringVar(&f.Config, "config", "", "path to TOML config file (key bindings, window scale)")

	flag.BoolVar(&f.Headless, "headless", false, "run without opening a window")
	flag.IntVar(&f.Frames, "frames", 60, "frames to run in headless mode")
	flag.StringVar(&f.PNGOut, "outpng", "", "write the final framebuffer to PNG at path")
	flag.StringVar(&f.Expect, "expect-crc32", "", "assert framebuffer CRC32 (hex)")
	flag.IntVar(&f.PNGScale, "pngscale", 4, "nearest-neighbor upscale factor for -outpng")
	flag.Parse()
	return f
}

func runHeadless(m *system.Machine, frames int, pngPath, expectCRC string, pngScale int) error {
	if frames <= 0 {
		frames = 1
	}

	start := time.Now()
	for i := 0; i < frames; i++ {
		m.StepFrame()
	}
	dur := time.Since(start)

	fb := m.Display().RGBA()[:]
	crc := crc32.ChecksumIEEE(fb)
	fps := float64(frames) / dur.Seconds()

	log.Printf("headless: frames=%d elapsed=%s fps=%.2f fb_crc32=%08x",
		frames, dur.Truncate(time.Millisecond), fps, crc)

	if pngPath != "" {
		if err := saveFramePNG(fb, pngScale, pngPath); err != nil {
			return fmt.Errorf("write PNG: %w", err)
		}
		log.Printf("wrote %s", pngPath)
	}

	if expectCRC != "" {
		want := strings.TrimPrefix(strings.ToLower(expectCRC), "0x")
		got := fmt.Sprintf("%08x", crc)
		if got != want {
			return fmt.Errorf("checksum mismatch: got %s, want %s", got, want)
		}
	}
	return nil
}

// saveFramePNG upscales the 156x7 buffer with nearest-neighbor (a 1-bit LCD
// panel has no interpolation to preserve) before encoding, grounded on
// IntuitionEngine's golang.org/x/image/draw scaling of its own video-chip
// framebuffer.
func saveFramePNG(pix []byte, scale int, path string) error {
	if scale < 1 {
		scale = 1
	}
	src := &image.RGBA{
		Pix:    pix,
		Stride: 4 * display.Width,
		Rect:   image.Rect(0, 0, display.Width, display.Height),
	}
	dstRect := image.Rect(0, 0, display.Width*scale, display.Height*scale)
	dst := image.NewRGBA(dstRect)
	draw.NearestNeighbor.Scale(dst, dstRect, src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, dst)
}

func main() {
	f := parseFlags()
	cfg := loadConfig(f.Config)

	m := system.New()

	if f.Headless {
		if err := runHeadless(m, f.Frames, f.PNGOut, f.Expect, f.PNGScale); err != nil {
			log.Fatal(err)
		}
		return
	}

	app := NewApp(cfg, m)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
