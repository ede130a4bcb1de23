package match

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"chb/topic"
)

var (
	ErrNilProject    = errors.New("nil project")
	ErrEmptyBasePath = errors.New("empty base path")
)

// ImportOptions tune folder import behavior.
type ImportOptions struct {
	MarkupExt    string // defaults to DefaultMarkupExt
	DetectBinary bool   // skip files whose content is a known binary type
}

// AddTopicsFromFolder recursively imports a filesystem folder into new
// topics appended to list. Markup files become topics referencing them,
// subdirectories become container topics, subdirectories with no importable
// content are skipped entirely. When a subdirectory holds a file named after
// it, that file comes to represent the container itself instead of staying a
// separate child.
//
// Files outside basePath are rebased into it when registered with the
// project. Per-file failures are skipped and aggregated into the returned
// error while the import keeps going, so a non-nil error alongside a grown
// list means a partial import worth reporting as a warning.
func AddTopicsFromFolder(list *topic.List, folder, basePath string, project Project, reader FileReader, opts ImportOptions, log *zap.Logger) error {
	if project == nil {
		return ErrNilProject
	}
	if len(basePath) == 0 {
		return ErrEmptyBasePath
	}
	if len(opts.MarkupExt) == 0 {
		opts.MarkupExt = DefaultMarkupExt
	}
	if !strings.HasSuffix(basePath, string(os.PathSeparator)) {
		basePath += string(os.PathSeparator)
	}
	return addFolder(list, folder, basePath, project, reader, opts, log)
}

func addFolder(list *topic.List, folder, basePath string, project Project, reader FileReader, opts ImportOptions, log *zap.Logger) (errs error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", folder, err)
	}

	var files, dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
			continue
		}
		if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), opts.MarkupExt) {
			files = append(files, e.Name())
		}
	}
	// Import in natural order so Chapter2 lands before Chapter10.
	slices.SortFunc(files, naturalCmp)
	slices.SortFunc(dirs, naturalCmp)

	for _, name := range files {
		path := filepath.Join(folder, name)
		t, err := importFile(path, basePath, project, reader, opts, log)
		if err != nil {
			log.Warn("Skipping content file", zap.String("file", path), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if t != nil {
			_ = list.Add(t)
		}
	}

	for _, name := range dirs {
		sub := filepath.Join(folder, name)

		container := topic.New(newTopicID())
		container.Title = name
		if err := addFolder(container.Subtopics, sub, basePath, project, reader, opts, log); err != nil {
			errs = multierr.Append(errs, err)
		}
		if container.Subtopics.Len() == 0 {
			log.Debug("Skipping folder with no importable content", zap.String("folder", sub))
			continue
		}

		// A file named exactly after the folder represents the container
		// itself - the container takes over its file reference and id, and
		// the duplicate child entry goes away. Clearing the title lets the
		// promoted file's own title govern display.
		for _, c := range container.Subtopics.Topics() {
			if c.File != nil && c.File.BaseName() == name {
				container.Title = ""
				container.ID = c.ID
				container.File = c.File
				container.Subtopics.Remove(c)
				break
			}
		}
		_ = list.Add(container)
	}
	return errs
}

func importFile(path, basePath string, project Project, reader FileReader, opts ImportOptions, log *zap.Logger) (*topic.Topic, error) {
	if opts.DetectBinary {
		bin, err := isBinaryFile(path)
		if err != nil {
			return nil, err
		}
		if bin {
			log.Debug("Skipping binary file with markup extension", zap.String("file", path))
			return nil, nil
		}
	}

	dest := path
	if !strings.HasPrefix(path, basePath) {
		dest = filepath.Join(basePath, filepath.Base(path))
	}
	cf, err := project.AddFileToProject(path, dest)
	if err != nil {
		return nil, fmt.Errorf("unable to add file to project: %w", err)
	}

	id, kind, err := reader.ReadTopicFile(cf.Path())
	if err != nil {
		return nil, fmt.Errorf("unable to read topic file: %w", err)
	}
	if !kind.Importable() {
		log.Debug("Skipping file, not a recognized document kind", zap.String("file", cf.Path()))
		return nil, nil
	}

	tid := id
	if len(tid) == 0 {
		tid = newTopicID()
	}
	t := topic.New(tid)
	t.File = &topic.File{Path: cf.Path(), ID: id, Kind: kind}
	return t, nil
}

// newTopicID mints an id for topics which do not get one from a content file.
func newTopicID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func isBinaryFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := f.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	kind, _ := filetype.Match(head[:n])
	return kind != filetype.Unknown, nil
}

func naturalCmp(a, b string) int {
	if natural.Less(a, b) {
		return -1
	}
	if natural.Less(b, a) {
		return 1
	}
	return 0
}
