// Package layout persists the topic tree to and from the content layout
// file. The format is shared with external authoring tools, so reading is
// permissive where writing is strict.
package layout

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"chb/common"
	"chb/match"
	"chb/topic"
)

const rootTag = "Topics"

// Attributes written by layout tooling before per-topic flags existed. They
// are migrated into topic state on load and never written back.
const (
	legacyAttrDefaultTopic  = "defaultTopic"
	legacyAttrSplitTOCTopic = "splitTOCTopic"
)

// Load reads the layout file, builds the topic tree and, when both provider
// and reader are given, matches the project's content files to the loaded
// topics. A file which cannot be parsed as XML fails the load, unexpected
// content inside a well-formed file is ignored with a warning.
func Load(path string, provider match.ContentFileProvider, reader match.FileReader, markupExt string, log *zap.Logger) (*topic.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open layout file %q: %w", path, err)
	}
	defer f.Close()

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("unable to parse layout file %q: %w", path, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("layout file %q has no root element", path)
	}
	if root.Tag != rootTag {
		return nil, fmt.Errorf("layout file %q: unexpected root element %q", path, root.Tag)
	}

	tree := topic.NewList()
	for _, el := range root.ChildElements() {
		if el.Tag != "Topic" {
			log.Warn("Unexpected tag in Topics, ignoring", zap.String("tag", el.Tag))
			continue
		}
		_ = tree.Add(topic.FromElement(el, log))
	}

	if id := root.SelectAttrValue(legacyAttrDefaultTopic, ""); len(id) > 0 {
		if t := tree.LookupByID(id); t != nil {
			t.IsDefaultTopic = true
		} else {
			log.Warn("Legacy defaultTopic id not found, ignoring", zap.String("id", id))
		}
	}
	if id := root.SelectAttrValue(legacyAttrSplitTOCTopic, ""); len(id) > 0 {
		if t := tree.LookupByID(id); t != nil {
			t.APIParentMode = common.ApiParentModeInsertAfter
		} else {
			log.Warn("Legacy splitTOCTopic id not found, ignoring", zap.String("id", id))
		}
	}

	if provider != nil && reader != nil {
		match.ProjectFilesToTopics(tree, provider, reader, markupExt, log)
	}
	return tree, nil
}

// Save writes the tree to the layout file, replacing it. Writing is direct,
// not atomic - a failure mid-write can leave a truncated file behind, callers
// wanting stronger guarantees should write to a temporary name and rename.
func Save(tree *topic.List, path string) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement(rootTag)
	for _, t := range tree.Topics() {
		t.AddToElement(root)
	}
	doc.Indent(2)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create layout file %q: %w", path, err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("unable to write layout file %q: %w", path, err)
	}
	return f.Close()
}
