// Package snapshot turns rendered frames into still images: PNG data URLs
// for embedding, scaled thumbnails and timestamped files.
package snapshot

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/Faultbox/surfview/internal/logger"
)

// DataURLPrefix starts every data URL produced by DataURL.
const DataURLPrefix = "data:image/png;base64,"

// FromPixels builds an image from tightly packed RGBA rows read back from
// OpenGL. Rows arrive bottom-up and are flipped.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid snapshot size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// Scale shrinks img to at most maxWidth pixels wide, keeping its aspect.
// Images already narrow enough, and a maxWidth of zero, return img as is.
func Scale(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}
	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// DataURL encodes img as a base64 PNG data URL.
func DataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return DataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode parses a data URL produced by DataURL.
func Decode(url string) (image.Image, error) {
	if len(url) < len(DataURLPrefix) || url[:len(DataURLPrefix)] != DataURLPrefix {
		return nil, fmt.Errorf("not a PNG data URL")
	}
	raw, err := base64.StdEncoding.DecodeString(url[len(DataURLPrefix):])
	if err != nil {
		return nil, fmt.Errorf("decoding base64: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding PNG: %w", err)
	}
	return img, nil
}

// Capture writes snapshots to timestamped files.
type Capture struct {
	Dir    string
	Prefix string

	now func() time.Time
}

// NewCapture creates a capture writing into dir.
func NewCapture(dir, prefix string) *Capture {
	return &Capture{Dir: dir, Prefix: prefix, now: time.Now}
}

// Filename returns the path the next Save would write.
func (c *Capture) Filename() string {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	name := fmt.Sprintf("%s_%s.png", c.Prefix, now().Format("2006-01-02_15-04-05.000"))
	if c.Dir != "" {
		name = filepath.Join(c.Dir, name)
	}
	return name
}

// Save writes img as PNG and returns the file path.
func (c *Capture) Save(img image.Image) (string, error) {
	if c.Dir != "" {
		if err := os.MkdirAll(c.Dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename()
	if err := WritePNG(filename, img); err != nil {
		return "", err
	}
	return filename, nil
}

// WritePNG encodes img into the file at path, replacing it if present.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}

	logger.Info("snapshot saved", zap.String("path", path))
	return nil
}
