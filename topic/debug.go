package topic

import (
	"chb/utils/debug"
)

// Dump renders the subtree in a compact indented form for debug reports.
func (l *List) Dump() string {
	tw := debug.NewTreeWriter()
	l.dump(tw, 0)
	return tw.String()
}

func (l *List) dump(tw *debug.TreeWriter, depth int) {
	if l == nil {
		return
	}
	for _, t := range l.topics {
		tw.Line(depth, "topic id=%s visible=%t default=%t api=%s mshvRoot=%t",
			t.ID, t.Visible, t.IsDefaultTopic, t.APIParentMode, t.IsMSHVRootContainer)
		if len(t.Title) > 0 {
			tw.TextBlock(depth+1, "title", t.Title)
		}
		if len(t.LinkText) > 0 {
			tw.TextBlock(depth+1, "linkText", t.LinkText)
		}
		if t.File != nil {
			tw.Line(depth+1, "file: %s (id=%s kind=%s)", t.File.Path, t.File.ID, t.File.Kind)
		}
		t.Subtopics.dump(tw, depth+1)
	}
}
