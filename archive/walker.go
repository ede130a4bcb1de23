// Package archive builds content staging helpers on top of "archive/zip".
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk. The file argument is the zip.File structure for a file in archive
// which satisfies the match condition. If an error is returned, processing
// stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk walks all files in the archive whose name starts with pattern (empty
// pattern matches everything), calling walkFn for each item. Entries with
// path traversal components ("..") or absolute paths fail the walk to
// prevent Zip Slip attacks.
func Walk(archive, pattern string, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, pattern) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Extract unpacks all regular entries of the archive into destDir preserving
// relative paths. Used to stage archived content for a folder import.
func Extract(archive, destDir string) error {
	return Walk(archive, "", func(_ string, f *zip.File) error {
		dest := filepath.Join(destDir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("unable to create directory for %q: %w", dest, err)
		}
		in, err := f.Open()
		if err != nil {
			return fmt.Errorf("unable to open zip entry %q: %w", f.Name, err)
		}
		defer in.Close()

		out, err := os.Create(dest)
		if err != nil {
			return fmt.Errorf("unable to create %q: %w", dest, err)
		}
		if _, err := io.Copy(out, in); err != nil {
			out.Close()
			return fmt.Errorf("unable to extract %q: %w", f.Name, err)
		}
		return out.Close()
	})
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
