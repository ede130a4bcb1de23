package toc

import (
	"io"

	"github.com/beevik/etree"
)

// Write renders entries as the toc XML document consumed by the build
// pipeline.
func Write(entries []*Entry, w io.Writer) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement("topics")
	for _, e := range entries {
		e.addToElement(root)
	}
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func (e *Entry) addToElement(parent *etree.Element) {
	el := parent.CreateElement("topic")
	el.CreateAttr("id", e.ID)
	if len(e.DestinationFile) > 0 {
		el.CreateAttr("file", e.DestinationFile)
	}
	if len(e.PreviewerTitle) > 0 {
		el.CreateAttr("title", e.PreviewerTitle)
	}
	if len(e.LinkText) > 0 {
		el.CreateAttr("linkText", e.LinkText)
	}
	if e.IsDefaultTopic {
		el.CreateAttr("isDefault", "true")
	}
	if e.APIParentMode.IsSet() {
		el.CreateAttr("apiParentMode", e.APIParentMode.String())
	}
	if e.IsExpanded {
		el.CreateAttr("isExpanded", "true")
	}
	if e.IsSelected {
		el.CreateAttr("isSelected", "true")
	}
	for _, c := range e.Children {
		c.addToElement(el)
	}
}
