package fracray

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// RootPalette returns n+1 colors: black for "no convergence" followed by one
// fully saturated hue per root, evenly spaced around the color wheel.
func RootPalette(n int) color.Palette {
	p := make(color.Palette, 0, n+1)
	p = append(p, color.NRGBA{0, 0, 0, 255})
	for i := 0; i < n; i++ {
		p = append(p, hsvToNRGBA(Real(i)/Real(n), 1, 1))
	}
	return p
}

// hsvToNRGBA converts h, s, v in [0,1] to an opaque color.
func hsvToNRGBA(h, s, v Real) color.NRGBA {
	h = math.Mod(h, 1) * 6
	i := math.Floor(h)
	f := h - i
	p, q, t := v*(1-s), v*(1-s*f), v*(1-s*(1-f))
	var r, g, b Real
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.NRGBA{uint8(math.Round(r * 255)), uint8(math.Round(g * 255)), uint8(math.Round(b * 255)), 255}
}

// Paletted maps every index through the root palette. Only the first 255
// roots get their own color; later ones are drawn black.
func (f *IndexFrame) Paletted() *image.Paletted {
	pal := RootPalette(f.Roots)
	if len(pal) > 256 {
		pal = pal[:256]
	}
	img := image.NewPaletted(image.Rect(0, 0, f.Width, f.Height), pal)
	for y := 0; y < f.Height; y++ {
		src := f.Data[y*f.Width : (y+1)*f.Width]
		dst := img.Pix[y*img.Stride : y*img.Stride+f.Width]
		for x, v := range src {
			if int(v) >= len(pal) {
				v = 0
			}
			dst[x] = uint8(v)
		}
	}
	return img
}

// Image returns the frame as an NRGBA image.
func (f *IndexFrame) Image() image.Image {
	pal := RootPalette(f.Roots)
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, v := range f.Data {
		c := pal[0]
		if int(v) < len(pal) {
			c = pal[v]
		}
		r, g, b, _ := c.RGBA()
		p := i * 4
		img.Pix[p+0] = uint8(r >> 8)
		img.Pix[p+1] = uint8(g >> 8)
		img.Pix[p+2] = uint8(b >> 8)
		img.Pix[p+3] = 255
	}
	return img
}

// Image returns the frame as an NRGBA image.
func (f *RGBFrame) Image() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i := range f.R {
		p := i * 4
		img.Pix[p+0] = f.R[i]
		img.Pix[p+1] = f.G[i]
		img.Pix[p+2] = f.B[i]
		img.Pix[p+3] = 255
	}
	return img
}

func encodeImage(w io.Writer, ext string, img image.Image) error {
	switch ext {
	case ".png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case ".gif":
		if p, ok := img.(*image.Paletted); ok {
			return gif.Encode(w, p, nil)
		}
		return gif.Encode(w, img, &gif.Options{NumColors: 256})
	}
	return fmt.Errorf("unsupported image extension %q: %w", ext, ErrInvalidArgument)
}

// SaveImage writes img to path, picking the encoder from the file extension
// (.png, .bmp, .tif, .tiff or .gif).
func SaveImage(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".bmp", ".tif", ".tiff", ".gif":
	default:
		return fmt.Errorf("unsupported image extension %q: %w", ext, ErrInvalidArgument)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeImage(f, ext, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	Logger().Info("image written", "path", path, "format", strings.TrimPrefix(ext, "."))
	return nil
}

// SaveFractal writes a fractal frame. GIF output keeps the exact root palette.
func SaveFractal(path string, f *IndexFrame) error {
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		return SaveImage(path, f.Paletted())
	}
	return SaveImage(path, f.Image())
}
