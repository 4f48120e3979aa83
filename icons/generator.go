package icons

// Favicon and touch icon generation for a site's public directory
//
// Responsibilities:
// 1. Validate input image meets minimum size requirements (if configured)
// 2. PNG favicons and touch icons:
//    - Classic favicons: 16x16, 32x32
//    - Apple touch icon: 180x180
//    - Android/Chrome icons: 192x192, 512x512
// 3. favicon.ico with embedded 16x16, 32x32 and 48x48 resolutions

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"

	"favicongen/config"
)

// pngTarget pairs a square edge length with its output filename
type pngTarget struct {
	size int
	name string
}

// pngTargets is the fixed output set, written in this order
var pngTargets = []pngTarget{
	{16, "favicon-16x16.png"},
	{32, "favicon-32x32.png"},
	{180, "apple-touch-icon.png"},
	{192, "android-chrome-192x192.png"},
	{512, "android-chrome-512x512.png"},
}

// icoSizes are the resolutions embedded in favicon.ico
var icoSizes = []int{16, 32, 48}

const icoName = "favicon.ico"

// Generator produces the favicon set from a single source image
type Generator struct {
	cfg *config.Config
}

// NewGenerator creates a new favicon generator
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Run executes one full generation pass: ensure the output directory
// exists, load the source image, then write the five PNGs and favicon.ico.
// Outputs overwrite existing files. A failure mid-pass leaves the
// artifacts written so far in place.
func (g *Generator) Run() error {
	if err := os.MkdirAll(g.cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	src, err := g.loadSource()
	if err != nil {
		return err
	}

	if err := g.generatePNGs(src); err != nil {
		return err
	}

	return g.generateICO(src)
}

// loadSource decodes the configured source image and checks it against
// the configured minimum dimensions
func (g *Generator) loadSource() (image.Image, error) {
	f, err := os.Open(g.cfg.Source.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode source image %s: %w", g.cfg.Source.Path, err)
	}

	bounds := src.Bounds()
	minW, minH := g.cfg.Source.MinWidth, g.cfg.Source.MinHeight
	if (minW > 0 && bounds.Dx() < minW) || (minH > 0 && bounds.Dy() < minH) {
		return nil, fmt.Errorf("source image is %dx%d, need at least %dx%d",
			bounds.Dx(), bounds.Dy(), minW, minH)
	}

	return src, nil
}

// generatePNGs writes one square PNG per target. The source is scaled
// to the exact target dimensions without preserving aspect ratio, so a
// non-square source gets stretched.
func (g *Generator) generatePNGs(src image.Image) error {
	for _, t := range pngTargets {
		resized := imaging.Resize(src, t.size, t.size, imaging.Lanczos)

		outPath := filepath.Join(g.cfg.Output.Dir, t.name)
		if err := imaging.Save(resized, outPath); err != nil {
			return fmt.Errorf("failed to save %s: %w", t.name, err)
		}

		log.Printf("Generated %s", t.name)
	}

	return nil
}

// generateICO writes favicon.ico containing one independently resampled
// image per entry in icoSizes
func (g *Generator) generateICO(src image.Image) error {
	images := make([]image.Image, 0, len(icoSizes))
	for _, size := range icoSizes {
		images = append(images, imaging.Resize(src, size, size, imaging.Lanczos))
	}

	outPath := filepath.Join(g.cfg.Output.Dir, icoName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", icoName, err)
	}

	if err := ico.EncodeAll(f, images); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", icoName, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", icoName, err)
	}

	log.Printf("Generated %s", icoName)
	return nil
}
