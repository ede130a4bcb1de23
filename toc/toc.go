// Package toc derives the build-time table of contents from the topic tree
// and renders it for the downstream build pipeline.
package toc

import (
	"chb/common"
	"chb/topic"
)

// Entry is a single table of contents node. Entries are a detached projection
// of the topic tree - regenerated from scratch on every call, never kept in
// sync with later tree edits.
type Entry struct {
	ID              string
	SourceFile      string // content file backing the topic, empty for containers
	DestinationFile string // rendered output location, empty for containers
	PreviewerTitle  string // title shown by the layout previewer
	LinkText        string // label used when linking to the topic
	Title           string
	IsDefaultTopic  bool
	APIParentMode   common.ApiParentMode
	IsExpanded      bool
	IsSelected      bool
	Children        []*Entry
}

// Generate projects the tree into TOC entries. An invisible topic excludes
// its whole subtree unless includeInvisible is set. Topics backed by a file
// get a destination under html/ keyed by topic id, file-less containers keep
// both file fields empty.
func Generate(list *topic.List, includeInvisible bool) []*Entry {
	if list.Len() == 0 {
		return nil
	}
	entries := make([]*Entry, 0, list.Len())
	for _, t := range list.Topics() {
		if !t.Visible && !includeInvisible {
			continue
		}
		e := &Entry{
			ID:             t.ID,
			Title:          t.Title,
			IsDefaultTopic: t.IsDefaultTopic,
			APIParentMode:  t.APIParentMode,
			IsExpanded:     t.IsExpanded,
			IsSelected:     t.IsSelected,
		}
		if t.File != nil {
			e.SourceFile = t.File.Path
			e.DestinationFile = "html/" + t.ID + ".htm"
		}
		e.PreviewerTitle = t.Title
		if len(e.PreviewerTitle) == 0 && t.File != nil {
			e.PreviewerTitle = t.File.BaseName()
		}
		e.LinkText = t.LinkText
		if len(e.LinkText) == 0 {
			e.LinkText = t.DisplayTitle()
		}
		e.Children = Generate(t.Subtopics, includeInvisible)
		entries = append(entries, e)
	}
	return entries
}

// Count returns the total number of entries including descendants.
func Count(entries []*Entry) int {
	n := 0
	for _, e := range entries {
		n += 1 + Count(e.Children)
	}
	return n
}
