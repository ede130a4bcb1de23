// Package topic implements the conceptual topic tree - an ordered, recursive
// hierarchy of authored documentation nodes. The tree is built either by
// loading a persisted layout file or by importing content files, edited in
// place, and projected into the build-time table of contents.
//
// The tree is meant for exclusive use by a single editing or build session,
// no internal locking is provided.
package topic

import (
	"path/filepath"
	"strings"

	"chb/common"
)

// File references the external content file backing a topic. It carries the
// resolved full path and whatever the file itself declared.
type File struct {
	Path string // resolved full path of the content file
	ID   string // id declared inside the file markup, may differ in case from the topic id
	Kind common.DocumentKind
}

// BaseName returns the file name without directory and extension.
func (f *File) BaseName() string {
	base := filepath.Base(f.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Topic is a single node of the hierarchy. Ids are intended to be globally
// unique but this is not enforced anywhere - lookups resolve duplicates by
// first match in traversal order.
type Topic struct {
	ID       string
	Title    string // optional display override
	LinkText string // optional override for the TOC link label

	IsDefaultTopic      bool
	APIParentMode       common.ApiParentMode
	IsMSHVRootContainer bool
	Visible             bool

	// Presentation state. Kept on the entity only because the generated TOC
	// copies it verbatim, nothing else in the core depends on it.
	IsExpanded bool
	IsSelected bool

	File      *File
	Subtopics *List

	parent *List
}

// New creates a standalone visible topic with an empty subtopic collection.
func New(id string) *Topic {
	t := &Topic{ID: id, Visible: true}
	t.Subtopics = &List{owner: t}
	return t
}

// Parent returns the collection currently containing the topic, nil for a
// detached one. The reference is maintained by List mutators and is never an
// ownership edge.
func (t *Topic) Parent() *List {
	return t.parent
}

// DisplayTitle returns the title used for sorting and as the link label
// fallback: the explicit title when present, otherwise the backing file name
// without extension, otherwise the id.
func (t *Topic) DisplayTitle() string {
	if len(t.Title) > 0 {
		return t.Title
	}
	if t.File != nil {
		return t.File.BaseName()
	}
	return t.ID
}
