// Package archive bundles conversion outputs for delivery: plain ZIP
// archives, and password-sealed bundles for outputs that need protection at
// rest.
package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// File is one entry destined for a bundle.
type File struct {
	Name string
	Data []byte
}

// Bundle writes the files into w as a ZIP archive, preserving order.
func Bundle(ctx context.Context, w io.Writer, files []File) error {
	zw := zip.NewWriter(w)
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			zw.Close()
			return err
		}
		entry, err := zw.Create(f.Name)
		if err != nil {
			zw.Close()
			return fmt.Errorf("archive: create entry %s: %w", f.Name, err)
		}
		if _, err := entry.Write(f.Data); err != nil {
			zw.Close()
			return fmt.Errorf("archive: write entry %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("archive: finalize: %w", err)
	}
	return nil
}

// BundlePaths reads each path and bundles the contents under their base
// names.
func BundlePaths(ctx context.Context, w io.Writer, paths []string) error {
	files := make([]File, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("archive: read %s: %w", p, err)
		}
		files = append(files, File{Name: filepath.Base(p), Data: data})
	}
	return Bundle(ctx, w, files)
}

// Extract unpacks a ZIP archive produced by Bundle back into memory.
func Extract(r io.ReaderAt, size int64) ([]File, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("archive: open: %w", err)
	}
	files := make([]File, 0, len(zr.File))
	for _, zf := range zr.File {
		rc, err := zf.Open()
		if err != nil {
			return nil, fmt.Errorf("archive: open entry %s: %w", zf.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("archive: read entry %s: %w", zf.Name, err)
		}
		files = append(files, File{Name: zf.Name, Data: data})
	}
	return files, nil
}
