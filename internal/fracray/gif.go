package fracray

import (
	"context"
	"fmt"
	"image"
	"image/gif"
	"os"
	"path/filepath"
)

// RenderZoom renders frames fractal images, each domain shrunk by factor
// around the center of the previous one. Frame i carries requestID+i.
func (r *Renderer) RenderZoom(ctx context.Context, model *NewtonModel, d Domain, width, height, frames int, factor Real, requestID uint64) ([]*IndexFrame, error) {
	if frames < 1 {
		return nil, fmt.Errorf("need at least one frame, got %d: %w", frames, ErrInvalidArgument)
	}
	if !(factor > 0) || !isFinite(factor) {
		return nil, fmt.Errorf("zoom factor must be > 0, got %g: %w", factor, ErrInvalidArgument)
	}
	out := make([]*IndexFrame, 0, frames)
	for i := 0; i < frames; i++ {
		if i%max(1, frames/100) == 0 {
			DebugLog("[GIF] %.2f%%", Real(i+1)*100/Real(frames))
		}
		f, err := r.RenderFractal(ctx, model, d, width, height, requestID+uint64(i))
		if err != nil {
			return out, err
		}
		out = append(out, f)
		d = d.Zoom(factor)
	}
	return out, nil
}

// SaveAnimatedGIF writes the frames as a looping GIF.
// delay is in 100ths of a second (e.g., 5 => 20 fps).
func SaveAnimatedGIF(frames []*IndexFrame, path string, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to write: %w", ErrInvalidArgument)
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for _, f := range frames {
		out.Image = append(out.Image, f.Paletted())
		out.Delay = append(out.Delay, delay)
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
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	Logger().Info("animation written", "path", path, "frames", len(frames))
	return nil
}
