// Package project implements the help project collaborators the core
// consumes - the on-disk content file inventory and the MAML topic file
// reader.
package project

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"chb/common"
	"chb/match"
)

// File is a single project inventory entry.
type File struct {
	path   string
	action common.BuildAction
}

func (f *File) Path() string                    { return f.path }
func (f *File) BuildAction() common.BuildAction { return f.action }

// Project is a file-backed content inventory rooted at the directory of the
// project file. There is no project manifest on disk yet, membership is
// derived from what the directory tree holds.
type Project struct {
	filename  string
	markupExt string
	files     []*File
	log       *zap.Logger
}

// New creates an empty project anchored at the given project file path.
func New(filename, markupExt string, log *zap.Logger) (*Project, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve project path %q: %w", filename, err)
	}
	return &Project{filename: abs, markupExt: markupExt, log: log}, nil
}

// Scan builds a project from the regular files found under the project root.
// Unreadable paths are skipped with a warning.
func Scan(filename, markupExt string, log *zap.Logger) (*Project, error) {
	p, err := New(filename, markupExt, log)
	if err != nil {
		return nil, err
	}

	root := filepath.Dir(p.filename)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			p.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() || path == p.filename {
			return nil
		}
		p.files = append(p.files, &File{path: path, action: classify(path, p.markupExt)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to scan project root %q: %w", root, err)
	}

	slices.SortFunc(p.files, func(a, b *File) int {
		if natural.Less(a.path, b.path) {
			return -1
		}
		if natural.Less(b.path, a.path) {
			return 1
		}
		return 0
	})
	return p, nil
}

func classify(path, markupExt string) common.BuildAction {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case strings.EqualFold(ext, markupExt):
		return common.BuildActionContent
	case ext == ".png" || ext == ".jpg" || ext == ".jpeg" || ext == ".gif" || ext == ".bmp" || ext == ".svg":
		return common.BuildActionImage
	case ext == ".tokens" || ext == ".snippets" || ext == ".items" || ext == ".xml":
		return common.BuildActionResource
	default:
		return common.BuildActionNone
	}
}

// Filename returns the absolute path of the project file.
func (p *Project) Filename() string {
	return p.filename
}

// ContentFiles returns the current inventory.
func (p *Project) ContentFiles() []match.ContentFile {
	out := make([]match.ContentFile, 0, len(p.files))
	for _, f := range p.files {
		out = append(out, f)
	}
	return out
}

// AddFileToProject registers a file with the inventory. When the destination
// differs from the source the file is copied into place first. Registering
// an already known destination is a no-op returning the existing entry.
func (p *Project) AddFileToProject(sourcePath, destPath string) (match.ContentFile, error) {
	src, err := filepath.Abs(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve source path %q: %w", sourcePath, err)
	}
	dest, err := filepath.Abs(destPath)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve destination path %q: %w", destPath, err)
	}

	for _, f := range p.files {
		if f.path == dest {
			return f, nil
		}
	}

	if src != dest {
		if err := copyFile(src, dest); err != nil {
			return nil, err
		}
		p.log.Debug("Copied file into project", zap.String("from", src), zap.String("to", dest))
	}

	f := &File{path: dest, action: classify(dest, p.markupExt)}
	p.files = append(p.files, f)
	return f, nil
}

func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("unable to create directory for %q: %w", dest, err)
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open %q: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("unable to create %q: %w", dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("unable to copy %q to %q: %w", src, dest, err)
	}
	return out.Close()
}
