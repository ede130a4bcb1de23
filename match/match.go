// Package match reconciles the separately discovered set of content files
// with topic tree nodes by logical id, and imports whole folders of content
// files into new topic subtrees.
package match

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"chb/common"
	"chb/topic"
)

// DefaultMarkupExt is the extension of authoring markup files.
const DefaultMarkupExt = ".aml"

// ContentFile is a single file known to the help project.
type ContentFile interface {
	Path() string
	BuildAction() common.BuildAction
}

// ContentFileProvider yields the project's content file inventory.
type ContentFileProvider interface {
	ContentFiles() []ContentFile
}

// FileReader extracts the logical id declared inside a content file and
// classifies its document kind. An empty id means the file declares none.
type FileReader interface {
	ReadTopicFile(path string) (string, common.DocumentKind, error)
}

// Project registers new files with the external help project.
type Project interface {
	Filename() string
	AddFileToProject(sourcePath, destPath string) (ContentFile, error)
}

// ProjectFilesToTopics walks the project's content files and attaches a file
// reference to every topic whose id equals the id declared inside a file.
// Files flagged with no build action and files without the markup extension
// are ignored. A file which cannot be read is skipped with a warning.
//
// The id comparison here is exact and case-sensitive while LookupByID is
// case-insensitive; both behaviors are long-standing layout tooling contract.
func ProjectFilesToTopics(tree *topic.List, provider ContentFileProvider, reader FileReader, markupExt string, log *zap.Logger) {
	if len(markupExt) == 0 {
		markupExt = DefaultMarkupExt
	}
	for _, cf := range provider.ContentFiles() {
		if cf.BuildAction() == common.BuildActionNone {
			continue
		}
		if !strings.EqualFold(filepath.Ext(cf.Path()), markupExt) {
			continue
		}

		id, kind, err := reader.ReadTopicFile(cf.Path())
		if err != nil {
			log.Warn("Unable to read content file, skipping", zap.String("file", cf.Path()), zap.Error(err))
			continue
		}
		if len(id) == 0 {
			continue
		}

		matched := 0
		for t := range tree.All() {
			if t.ID == id {
				t.File = &topic.File{Path: cf.Path(), ID: id, Kind: kind}
				matched++
			}
		}
		log.Debug("Matched content file", zap.String("file", cf.Path()), zap.String("id", id), zap.Int("topics", matched))
	}
}
