package fracray

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// writeRaw dumps a header of int32 width, height and channel count
// (little-endian) followed by each channel plane in turn.
func writeRaw(path string, width, height int, planes ...any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range []int32{int32(width), int32(height), int32(len(planes))} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	for _, p := range planes {
		if err := binary.Write(w, binary.LittleEndian, p); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// SaveRaw writes the root indices as one uint16 plane.
func (f *IndexFrame) SaveRaw(path string) error {
	if n := f.Width * f.Height; len(f.Data) != n {
		return fmt.Errorf("data length mismatch: got %d, expected %d (width*height)", len(f.Data), n)
	}
	return writeRaw(path, f.Width, f.Height, f.Data)
}

// SaveRaw writes the R, G and B planes, one byte per pixel each.
func (f *RGBFrame) SaveRaw(path string) error {
	n := f.Width * f.Height
	if len(f.R) != n || len(f.G) != n || len(f.B) != n {
		return fmt.Errorf("channel length mismatch: got %d/%d/%d, expected %d (width*height)", len(f.R), len(f.G), len(f.B), n)
	}
	return writeRaw(path, f.Width, f.Height, f.R, f.G, f.B)
}
