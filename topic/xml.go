package topic

import (
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"chb/common"
)

// Per-topic read/write routines for the layout file format. The enclosing
// document (root element, legacy attributes) is owned by the layout package.

const (
	attrID        = "id"
	attrVisible   = "visible"
	attrTitle     = "title"
	attrLinkText  = "linkText"
	attrDefault   = "isDefault"
	attrExpanded  = "isExpanded"
	attrSelected  = "isSelected"
	attrAPIParent = "apiParentMode"
	attrMSHVRoot  = "isMSHVRootContentContainer"
)

// FromElement builds a topic with its whole subtree from a layout file Topic
// element. The format is also produced by external tooling, so unknown
// attributes and child elements are ignored with a warning instead of
// failing the load.
func FromElement(el *etree.Element, log *zap.Logger) *Topic {
	t := New(el.SelectAttrValue(attrID, ""))
	t.Title = el.SelectAttrValue(attrTitle, "")
	t.LinkText = el.SelectAttrValue(attrLinkText, "")
	t.Visible = parseBoolAttr(el, attrVisible, true)
	t.IsDefaultTopic = parseBoolAttr(el, attrDefault, false)
	t.IsExpanded = parseBoolAttr(el, attrExpanded, false)
	t.IsSelected = parseBoolAttr(el, attrSelected, false)
	t.IsMSHVRootContainer = parseBoolAttr(el, attrMSHVRoot, false)

	if v := el.SelectAttrValue(attrAPIParent, ""); len(v) > 0 {
		if mode, err := common.ParseApiParentMode(v); err != nil {
			log.Warn("Unknown apiParentMode in layout file, ignoring", zap.String("id", t.ID), zap.String("value", v))
		} else {
			t.APIParentMode = mode
		}
	}

	for _, child := range el.ChildElements() {
		if child.Tag != "Topic" {
			log.Warn("Unexpected tag in Topic, ignoring", zap.String("parent", el.Tag), zap.String("tag", child.Tag))
			continue
		}
		_ = t.Subtopics.Add(FromElement(child, log))
	}
	return t
}

// AddToElement serializes the topic and its subtree as a child Topic element
// of parent. Only non-default attribute values are written.
func (t *Topic) AddToElement(parent *etree.Element) {
	el := parent.CreateElement("Topic")
	el.CreateAttr(attrID, t.ID)
	el.CreateAttr(attrVisible, strconv.FormatBool(t.Visible))
	if t.IsDefaultTopic {
		el.CreateAttr(attrDefault, "true")
	}
	if t.IsMSHVRootContainer {
		el.CreateAttr(attrMSHVRoot, "true")
	}
	if t.APIParentMode.IsSet() {
		el.CreateAttr(attrAPIParent, t.APIParentMode.String())
	}
	if t.IsExpanded {
		el.CreateAttr(attrExpanded, "true")
	}
	if t.IsSelected {
		el.CreateAttr(attrSelected, "true")
	}
	if len(t.Title) > 0 {
		el.CreateAttr(attrTitle, t.Title)
	}
	if len(t.LinkText) > 0 {
		el.CreateAttr(attrLinkText, t.LinkText)
	}
	if t.Subtopics != nil {
		for _, c := range t.Subtopics.topics {
			c.AddToElement(el)
		}
	}
}

func parseBoolAttr(el *etree.Element, name string, def bool) bool {
	v := el.SelectAttrValue(name, "")
	if len(v) == 0 {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
